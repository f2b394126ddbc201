package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"smartystreets-api/pkg/smartystreets"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var validationErrs validator.ValidationErrors
	var decodeErrs schema.MultiError
	if stderrors.As(err, &validationErrs) || stderrors.As(err, &decodeErrs) {
		return NewAppError(technicalMessage, MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}

	if smartyErr, ok := smartystreets.AsError(err); ok {
		return mapSmartyError(smartyErr, technicalMessage)
	}

	return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
}

func mapSmartyError(err *smartystreets.Error, technicalMessage string) *AppError {
	switch err.Kind {
	case smartystreets.KindContract:
		// contract messages are written for callers
		return NewAppError(technicalMessage, err.Message, ErrCodeInvalidParameters, http.StatusBadRequest, err)
	case smartystreets.KindTransport:
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	case smartystreets.KindRemote:
		switch {
		case err.StatusCode == http.StatusUnauthorized || err.StatusCode == http.StatusPaymentRequired || err.StatusCode == http.StatusForbidden:
			return NewAppError(technicalMessage, MsgUpstreamRejected, ErrCodeUpstreamRejected, http.StatusBadGateway, err)
		case err.StatusCode == http.StatusTooManyRequests:
			return NewAppError(technicalMessage, MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, err)
		case err.StatusCode == http.StatusBadRequest || err.StatusCode == http.StatusUnprocessableEntity || err.StatusCode == http.StatusRequestEntityTooLarge:
			return NewAppError(technicalMessage, err.Message, ErrCodeInvalidAddress, http.StatusUnprocessableEntity, err)
		default:
			return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusBadGateway, err)
		}
	default:
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusBadGateway, err)
	}
}
