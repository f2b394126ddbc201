package smartystreets

import (
	"smartystreets-api/internal/transformers"
	"smartystreets-api/pkg/casing"
)

// Payload is the wire-ready form of an Input. Batch is set when the input
// was a List and the items are sent together in a POST body.
type Payload struct {
	Items []Request
	Batch bool
}

var defaultParser = transformers.NewAddressTransformer()

// NormalizeAddress converts an address input into request items. Free text
// is parsed into street, city, state and zipcode; structured input has its
// keys converted to snake_case. A nil input yields a nil Payload.
func NormalizeAddress(in Input) *Payload {
	return normalizeWith(defaultParser, in)
}

func normalizeWith(parser transformers.AddressTransformer, in Input) *Payload {
	switch t := in.(type) {
	case nil:
		return nil
	case List:
		items := make([]Request, len(t))
		for i, item := range t {
			items[i] = normalizeSingle(parser, item)
		}
		return &Payload{Items: items, Batch: true}
	case Single:
		return &Payload{Items: []Request{normalizeSingle(parser, t)}}
	default:
		return nil
	}
}

func normalizeSingle(parser transformers.AddressTransformer, in Single) Request {
	switch t := in.(type) {
	case Text:
		return parseText(parser, string(t))
	case Fields:
		return snakeRequest(t)
	case Address:
		return t.request()
	default:
		return Request{}
	}
}

func parseText(parser transformers.AddressTransformer, text string) Request {
	parsed := parser.ParseAddress(text)
	req := Request{
		"street": parsed.StreetLine(),
		"city":   parsed.City,
		"state":  parsed.State,
	}
	if parsed.Zip != "" {
		req["zipcode"] = parsed.Zip
	}
	return req
}

func snakeRequest(m map[string]any) Request {
	return Request(casing.Map(m, casing.SnakeConverter))
}
