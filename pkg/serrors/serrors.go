// Package serrors defines the failure kinds of a url statistics run and an
// error wrapper that keeps the kind matchable after wrapping.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and match through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds recognized by the url statistics tool. Failures of these kinds abort
// a run; malformed URLs inside the corpus are never reported as errors.
var (
	// ErrEmptyPath indicates an input or output path string is empty.
	ErrEmptyPath = NewKind("EMPTY_PATH")
	// ErrCannotOpenInput indicates the input resource could not be opened for reading.
	ErrCannotOpenInput = NewKind("CANNOT_OPEN_INPUT")
	// ErrCannotOpenOutput indicates the output resource could not be opened for writing.
	ErrCannotOpenOutput = NewKind("CANNOT_OPEN_OUTPUT")
	// ErrBadArgument indicates a malformed command line argument.
	ErrBadArgument = NewKind("BAD_ARGUMENT")
	// ErrIO indicates a read or write failure on an already opened resource.
	ErrIO = NewKind("IO")
)

// IsArgument reports whether err carries one of the kinds that stem from the
// caller's arguments rather than from the system.
func IsArgument(err error) bool {
	for _, k := range []Kind{ErrEmptyPath, ErrCannotOpenInput, ErrCannotOpenOutput, ErrBadArgument} {
		if errors.Is(err, k) {
			return true
		}
	}

	return false
}

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match either the kind or the cause.
//
// Formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
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

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the wrapped
// error in the chain. This ensures that errors.Is works for both.
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

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
