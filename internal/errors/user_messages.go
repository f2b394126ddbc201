package errors

// User-friendly error messages
const (
	MsgInvalidAddress     = "The address could not be verified. Please check the street, city, state and ZIP code."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUnauthorized       = "A valid bearer token is required to use this API."
	MsgRateLimited        = "The address service is receiving too many requests. Please wait a moment and try again."
	MsgUpstreamRejected   = "The address service rejected our credentials. Please contact support."
	MsgServiceUnavailable = "We're unable to reach the address service right now. Please try again in a few minutes."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
