package convert

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure. The kind string is surfaced
// verbatim in the error field of the response envelope.
type Kind string

const (
	KindMissingURL        Kind = "missing_url"
	KindInvalidURL        Kind = "invalid_url"
	KindConnection        Kind = "connection_error"
	KindRemoteStatus      Kind = "remote_status"
	KindFetchTimeout      Kind = "fetch_timeout"
	KindRequestTimeout    Kind = "request_timeout"
	KindUninitialized     Kind = "converter_uninitialized"
	KindConversionFailure Kind = "conversion_failure"
)

// Error is a structured pipeline failure. Every stage maps its
// low-level errors into exactly one Kind at its own boundary.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the failure kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingURL, KindInvalidURL:
		return http.StatusBadRequest
	case KindFetchTimeout, KindRequestTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Errf creates an Error with a formatted message.
func Errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records cause for unwrapping.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind carried by err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status for err. Errors without a kind are
// unexpected internal failures.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
