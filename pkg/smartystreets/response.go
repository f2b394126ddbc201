package smartystreets

import (
	"fmt"
	"net/http"

	"smartystreets-api/pkg/casing"
)

// Result is the outcome of a successful call. Data holds the camelCased
// body, or the suggestion list for autocomplete responses; Raw holds the
// decoded body with its original keys and Body the bytes on the wire.
type Result struct {
	Data       any
	Raw        any
	Body       []byte
	StatusCode int
}

type remoteErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func interpretResponse(status int, body []byte) (*Result, error) {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, remoteError(status, body)
	}

	result := &Result{Body: body, StatusCode: status}
	if len(body) == 0 {
		return result, nil
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &Error{
			Kind:       KindDecode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			StatusCode: status,
			Cause:      err,
		}
	}
	result.Raw = raw
	result.Data = casing.ToCamel(raw)
	if envelope, ok := result.Data.(map[string]any); ok {
		if suggestions, ok := envelope["suggestions"]; ok && suggestions != nil {
			result.Data = suggestions
		}
	}
	return result, nil
}

// remoteError prefers the service's own message and falls back to
// "<status> <body>".
func remoteError(status int, body []byte) *Error {
	var parsed remoteErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &Error{Kind: KindRemote, Message: parsed.Error.Message, StatusCode: status}
	}
	return &Error{Kind: KindRemote, Message: fmt.Sprintf("%d %s", status, body), StatusCode: status}
}
