package smartystreets

import "context"

// VerifyAddress verifies and standardizes a street address. A single
// address is sent as a GET, a List as one POST.
func (c *Client) VerifyAddress(ctx context.Context, in Input) (*Result, error) {
	payload := normalizeWith(c.parser, in)
	if payload == nil {
		payload = &Payload{Items: []Request{{}}}
	}
	return c.call(ctx, endpointStreetAddress, payload)
}
