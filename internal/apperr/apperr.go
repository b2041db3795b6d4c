// Package apperr defines the typed errors raised by the service layer and
// the auth subsystem, and their translation to HTTP status codes. Handlers
// never build error responses themselves; they hand any error to the
// boundary translation so every kind maps to one stable status.
package apperr

import (
	"errors"
	"net/http"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindTokenMissing
	KindTokenInvalid
	KindTokenExpired
	KindForbidden
	KindUpstream
)

type Error struct {
	kind    Kind
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// Message is the client-facing text; the wrapped cause stays internal.
func (e *Error) Message() string { return e.message }

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{kind: kind, message: message, err: err}
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func TokenMissing(message string) *Error { return New(KindTokenMissing, message) }
func TokenInvalid(message string) *Error { return New(KindTokenInvalid, message) }
func TokenExpired(message string) *Error { return New(KindTokenExpired, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal server error", err)
}

func Upstream(message string, err error) *Error {
	return Wrap(KindUpstream, message, err)
}

// KindOf classifies any error; non-apperr errors are infrastructure
// failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindTokenMissing:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTokenInvalid, KindTokenExpired:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage is the text sent to the caller. Infrastructure errors are
// masked; everything else carries its own message.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.kind != KindInternal {
		return appErr.message
	}
	return "internal server error"
}
