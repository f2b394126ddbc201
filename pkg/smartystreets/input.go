package smartystreets

import "strconv"

// Input is a street address in one of the shapes VerifyAddress accepts:
// Text, Fields, Address or a List of those. A nil Input is absent.
type Input interface {
	isInput()
}

// Single is an Input that describes exactly one address.
type Single interface {
	Input
	isSingle()
}

// Text is a free-text postal address, e.g. "440 Park Ave S, New York, NY".
type Text string

// Fields is a structured address keyed by wire names in snake_case or camelCase.
type Fields map[string]any

// Address is a typed structured address. Empty fields are not sent.
type Address struct {
	InputID      string
	Street       string
	Street2      string
	Secondary    string
	City         string
	State        string
	Zipcode      string
	Lastline     string
	Addressee    string
	Urbanization string
	Candidates   int
	Match        string
}

// List is a batch of addresses sent in one POST.
type List []Single

func (Text) isInput()     {}
func (Text) isSingle()    {}
func (Fields) isInput()   {}
func (Fields) isSingle()  {}
func (Address) isInput()  {}
func (Address) isSingle() {}
func (List) isInput()     {}

// Request is one wire request item keyed by snake_case names.
type Request map[string]any

func (a Address) request() Request {
	req := Request{}
	set := func(key, value string) {
		if value != "" {
			req[key] = value
		}
	}
	set("input_id", a.InputID)
	set("street", a.Street)
	set("street2", a.Street2)
	set("secondary", a.Secondary)
	set("city", a.City)
	set("state", a.State)
	set("zipcode", a.Zipcode)
	set("lastline", a.Lastline)
	set("addressee", a.Addressee)
	set("urbanization", a.Urbanization)
	set("match", a.Match)
	if a.Candidates > 0 {
		req["candidates"] = a.Candidates
	}
	return req
}

// queryValue renders a request value as a query string parameter.
func queryValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
