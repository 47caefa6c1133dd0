// Package serrors carries semantic error kinds through ordinary Go error
// chains so that transports (CLI exit handling, HTTP handlers) can map a
// failure to a status without knowing which layer produced it.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. Kinds are comparable sentinels
// and match through errors.Is/As on any chain that carries them.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity (a video, a transcript) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or rejected credentials for an upstream API.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the caller supplied invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates an upstream service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates an upstream service throttled the request.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg set: "<msg>"
//   - only err set: "<err>"
//   - neither: the kind's name
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or anything in the wrapped chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches either the kind sentinel or anything in the wrapped chain. The
// kind is tried first so the outermost semantic kind wins.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost semantic kind found in err's chain, or nil
// when err carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error in err's chain, or
// an empty string.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.msg
	}

	return ""
}
