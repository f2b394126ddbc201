package smartystreets

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// json mirrors encoding/json semantics.
var json = sonic.ConfigStd

const inputIDLength = 8

// newInputID returns a random token used to correlate a request item with
// its response candidates.
func newInputID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:inputIDLength]
}

// withInputID returns a copy of r that always carries input_id. A
// caller-supplied input_id or inputId is kept.
func withInputID(r Request) Request {
	out := make(Request, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	switch {
	case present(r["input_id"]):
	case present(r["inputId"]):
		out["input_id"] = r["inputId"]
	default:
		out["input_id"] = newInputID()
	}
	return out
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	default:
		return true
	}
}
