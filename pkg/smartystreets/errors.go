package smartystreets

import "errors"

// Kind classifies a client error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindContract is a caller mistake detected before any I/O.
	KindContract
	// KindTransport is a network or connection failure.
	KindTransport
	// KindRemote is a non-success status returned by the service.
	KindRemote
	// KindDecode is a success status with a body that is not JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var (
	ErrMissingAuthID    = &Error{Kind: KindContract, Message: "You must pass your SmartyStreets Auth ID."}
	ErrMissingAuthToken = &Error{Kind: KindContract, Message: "You must pass your SmartyStreets Auth Token."}
	ErrPrefixRequired   = &Error{Kind: KindContract, Message: "Prefix is required."}
)

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsContract reports whether err is a caller mistake.
func IsContract(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindContract
}

// IsRemote reports whether err carries a status from the service.
func IsRemote(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindRemote
}

func contractError(message string, cause error) *Error {
	return &Error{Kind: KindContract, Message: message, Cause: cause}
}

func transportError(cause error) *Error {
	return &Error{Kind: KindTransport, Message: cause.Error(), Cause: cause}
}
