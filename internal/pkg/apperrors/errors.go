// Package apperrors carries the typed error taxonomy of the dispatch core.
// Business guard failures are returned as *Error values so callers can branch
// on the kind; infrastructure failures stay plain wrapped errors.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an expected business failure.
type Kind int

const (
	// KindNotFound means the referenced ride or profile is absent.
	KindNotFound Kind = iota + 1
	// KindForbidden means the actor lacks authority for the operation.
	KindForbidden
	// KindConflict means a status precondition was violated.
	KindConflict
	// KindInvalidInput means the request payload was malformed or out of range.
	KindInvalidInput
)

// Error is a typed business error with an optional payload for the caller
// (e.g. the existing active ride on a duplicate request conflict).
type Error struct {
	Kind    Kind
	Message string
	Data    interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithData attaches a payload surfaced alongside the error response.
func (e *Error) WithData(data interface{}) *Error {
	e.Data = data
	return e
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 when err is not a business error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// Is reports whether err is a business error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// AsError returns the *Error inside err, if any.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// HTTPStatus maps a business error kind to its HTTP status; unknown errors are
// treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
