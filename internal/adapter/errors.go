package adapter

import (
	"errors"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRequestFailed wraps transport failures: refused connections,
	// timeouts and cancelled contexts.
	ErrRequestFailed = errors.New("request failed")
	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrFileUnreadable is returned when the CSV to upload cannot be read.
	ErrFileUnreadable = errors.New("file unreadable")
)

// ResponseError is a non-2xx API response. Detail is the server message,
// falling back to the HTTP status text.
type ResponseError struct {
	StatusCode int
	Detail     string
	kind       error
}

func (e *ResponseError) Error() string {
	return e.Detail
}

// Unwrap returns the sentinel matching StatusCode.
func (e *ResponseError) Unwrap() error {
	return e.kind
}

func statusKind(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
