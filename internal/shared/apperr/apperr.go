package apperr

import (
	"errors"
	"net/http"
)

// Sentinel errors crossing the service boundary. Every failed operation maps to
// exactly one of these; handlers translate them to HTTP statuses and callers
// revert any optimistic state.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrSelfFollow          = errors.New("cannot follow yourself")
	ErrEmptyPost           = errors.New("post needs text or an image")
	ErrContentTooLong      = errors.New("post content too long")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrIdentityUnavailable = errors.New("identity unavailable")
	ErrUploadFailed        = errors.New("upload failed")
	ErrFollowTransaction   = errors.New("follow transaction failed")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// Status maps a service error to an HTTP status code. Unknown errors are
// treated as internal.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSelfFollow),
		errors.Is(err, ErrEmptyPost),
		errors.Is(err, ErrContentTooLong),
		errors.Is(err, ErrIdentityUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, ErrUploadFailed):
		return http.StatusBadGateway
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrFollowTransaction):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
