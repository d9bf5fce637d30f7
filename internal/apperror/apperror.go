// Package apperror defines the error kinds surfaced by the HTTP API.
package apperror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind identifies the category of an application error.
type Kind int

const (
	// KindInternal is the fallback for unexpected failures.
	KindInternal Kind = iota
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound
	// KindValidation indicates malformed client input.
	KindValidation
	// KindUnauthorized indicates a missing or incorrect credential.
	KindUnauthorized
)

// String returns the kind name rendered in error responses.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFoundError"
	case KindValidation:
		return "ValidationError"
	case KindUnauthorized:
		return "UnauthorizedError"
	default:
		return "InternalServerError"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error carrying its kind, message and optional details.
type Error struct {
	Kind    Kind
	Message string
	Details []string

	cause error
}

func newError(kind Kind, message string, details []string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Details: details,
		cause:   errors.New(message),
	}
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, fmt.Sprintf(format, args...), nil)
}

// Validation creates a KindValidation error with the given details.
func Validation(message string, details ...string) *Error {
	return newError(KindValidation, message, details)
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, message, nil)
}

const internalMessage = "Internal Server Error"

// Internal wraps an unexpected error. The message stays generic; err is kept
// as the cause for logs and stack traces.
func Internal(err error) *Error {
	if err == nil {
		return newError(KindInternal, internalMessage, nil)
	}
	return &Error{
		Kind:    KindInternal,
		Message: internalMessage,
		cause:   errors.WithStack(err),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code of the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Stack returns the stack trace captured when the error was created.
func (e *Error) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

// From converts any error into an *Error, defaulting to KindInternal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
