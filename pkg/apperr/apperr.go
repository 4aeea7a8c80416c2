package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure into the closed set of outcomes the API can
// report. Everything except Internal is operational: anticipated, safe to
// describe to the client.
type Kind int

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	InvalidCredentials
	Forbidden
	NotFound
	AlreadyExists
)

// Error is the single error type handlers propagate up to the normalizer.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an operational error with a client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause while keeping the client-facing message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Internalf marks an unanticipated failure. The message is logged, never
// sent to clients in production.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, defaulting to Internal for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsOperational reports whether err is safe to describe to the client.
func IsOperational(err error) bool {
	return KindOf(err) != Internal
}

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case Validation, AlreadyExists:
		return http.StatusBadRequest
	case Unauthenticated, InvalidCredentials:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
