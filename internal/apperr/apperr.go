// Package apperr defines the error taxonomy shared by the stores, the chat
// workflow and the HTTP layer. Every error carries a code the API boundary
// maps to an HTTP status, plus a human-readable detail string returned to
// the client.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeUnauthenticated       Code = "UNAUTHENTICATED"
	CodeNotFound              Code = "NOT_FOUND"
	CodeConflict              Code = "CONFLICT"
	CodeUpstreamUnavailable   Code = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamMisconfigured Code = "UPSTREAM_MISCONFIGURED"
)

type Error struct {
	Code   Code
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error with no wrapped cause.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Wrap attaches an underlying cause, kept out of the client-facing detail
// unless the detail already embeds it.
func Wrap(code Code, detail string, err error) *Error {
	return &Error{Code: code, Detail: detail, Err: err}
}

// CodeOf extracts the taxonomy code from err, or "" if err is not an
// *Error anywhere in its chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HTTPStatus maps a taxonomy code to the status the API layer responds with.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
