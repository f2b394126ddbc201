package smartystreets

import "context"

// Suggestion is an autocomplete request: a bare Prefix or a Query that
// carries a prefix plus filters.
type Suggestion interface {
	isSuggestion()
}

// Prefix is the partial address typed so far.
type Prefix string

func (Prefix) isSuggestion() {}

// SuggestAddress returns address completions for a prefix. It fails with
// ErrPrefixRequired before any I/O when no prefix is given.
func (c *Client) SuggestAddress(ctx context.Context, s Suggestion) (*Result, error) {
	req, err := suggestRequest(s)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, endpointSuggest, &Payload{Items: []Request{req}})
}

func suggestRequest(s Suggestion) (Request, error) {
	var req Request
	switch t := s.(type) {
	case Prefix:
		req = Request{"prefix": string(t)}
	case Query:
		req = snakeRequest(t)
	default:
		return nil, ErrPrefixRequired
	}
	if prefix, ok := req["prefix"].(string); !ok || prefix == "" {
		return nil, ErrPrefixRequired
	}
	return req, nil
}
