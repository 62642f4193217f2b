// Released under an MIT license. See LICENSE.

// Package fail provides the errors raised while reading and evaluating lisp.
package fail

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

// Error kinds.
const (
	Unknown Kind = iota

	Arity
	EmptyList
	Malformed
	NotCallable
	Parse
	Type
	Unbound
	User
)

// Error lets a Kind be used as a target for errors.Is.
func (k Kind) Error() string {
	return k.String()
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Arity:
		return "arity mismatch"
	case EmptyList:
		return "empty list"
	case Malformed:
		return "malformed special form"
	case NotCallable:
		return "not callable"
	case Parse:
		return "parse error"
	case Type:
		return "type error"
	case Unbound:
		return "unbound symbol"
	case User:
		return "error"
	case Unknown:
	}

	return "unknown error"
}

// T (fail) is an error with a kind and a human-readable message.
type T struct {
	Kind Kind
	Msg  string

	err error // Optional cause.
}

type fail = T

// New creates a new error of kind k.
func New(k Kind, format string, args ...interface{}) *fail {
	return &fail{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new error of kind k caused by err.
func Wrap(k Kind, err error, format string, args ...interface{}) *fail {
	return &fail{Kind: k, Msg: fmt.Sprintf(format, args...), err: err}
}

// Error returns the error message for f.
func (f *fail) Error() string {
	return f.Kind.String() + ": " + f.Msg
}

// Is returns true if target is f's Kind.
func (f *fail) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == f.Kind
}

// Unwrap returns the cause of f, if any.
func (f *fail) Unwrap() error {
	return f.err
}

// Errors commonly raised by the core.

// ArityMismatch is returned when a procedure is passed the wrong number of arguments.
func ArityMismatch(what string, expected string, actual int) *fail {
	return New(Arity, "%s expected %s, passed %d", what, expected, actual)
}

// EmptyListAccess is returned when the head of the empty list is requested.
func EmptyListAccess(op string) *fail {
	return New(EmptyList, "attempted to apply %s on nil", op)
}

// UnboundSymbol is returned when a symbol has no binding.
func UnboundSymbol(k string) *fail {
	return New(Unbound, "'%s' is not defined", k)
}

// KindOf returns the kind of err, or Unknown if err was not raised by lisp.
func KindOf(err error) Kind {
	var f *fail
	if errors.As(err, &f) {
		return f.Kind
	}

	return Unknown
}
