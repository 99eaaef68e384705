// Package httpx writes the JSON envelopes returned by every API route.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by the domain packages.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// RespondError maps domain errors to the failure envelope. Unknown errors are
// reported as a generic 500 so internal detail never reaches the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, ErrDuplicate):
		Fail(w, http.StatusConflict, "resource already exists")
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		Fail(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "unauthorized")
	default:
		Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
