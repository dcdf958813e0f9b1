package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/campusauth/internal/server/identity"
)

// statusFor translates a service-layer error into the response status and
// client-facing message.
//
// Validation errors are always 400. Tagged provider errors map per the fixed
// category table; anything else is a 500 carrying the error text.
func statusFor(err error) (int, string) {

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var pe *identity.Error
	if errors.As(err, &pe) {
		switch pe.Kind {
		case identity.KindAccountExists:
			return http.StatusBadRequest, pe.Error()
		case identity.KindAccountNotFound:
			return http.StatusNotFound, pe.Error()
		case identity.KindNotAuthorized:
			return http.StatusUnauthorized, pe.Error()
		case identity.KindNotConfirmed:
			return http.StatusForbidden, pe.Error()
		case identity.KindCodeMismatch, identity.KindCodeExpired, identity.KindInvalidParameter:
			return http.StatusBadRequest, pe.Error()
		}
	}

	return http.StatusInternalServerError, "An error occurred: " + err.Error()
}
