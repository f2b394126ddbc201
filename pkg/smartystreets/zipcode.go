package smartystreets

import "context"

// Lookup is a city/state/ZIP query: a Query or a QueryList.
type Lookup interface {
	isLookup()
}

// Query is a lookup or suggestion filter keyed in snake_case or camelCase,
// e.g. {"city": "Denver", "state": "CO"} or {"prefix": "123 Main", "cityFilter": "Denver"}.
// String values are sent as is, but strings inside a list value are
// case-converted like keys, so pass filter lists as one comma-separated
// string ("Denver,Fort Collins").
type Query map[string]any

// QueryList is a batch of lookups sent in one POST.
type QueryList []Query

func (Query) isLookup()     {}
func (Query) isSuggestion() {}
func (QueryList) isLookup() {}

// LookupZipcode resolves cities, states and ZIP codes against each other.
func (c *Client) LookupZipcode(ctx context.Context, l Lookup) (*Result, error) {
	return c.call(ctx, endpointZipcode, lookupPayload(l))
}

func lookupPayload(l Lookup) *Payload {
	switch t := l.(type) {
	case Query:
		return &Payload{Items: []Request{snakeRequest(t)}}
	case QueryList:
		items := make([]Request, len(t))
		for i, q := range t {
			items[i] = snakeRequest(q)
		}
		return &Payload{Items: items, Batch: true}
	default:
		return &Payload{Items: []Request{{}}}
	}
}
