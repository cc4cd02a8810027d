// Released under an MIT license. See LICENSE.

// Package errs provides starlisp's error type. Every error carries a kind,
// a symbolic tag and an optional message and payload.
package errs

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
)

// Kind classifies errors.
type Kind int

// Error kinds.
const (
	Internal Kind = iota
	Syntax
	EOF
	Unbound
	Arity
	Type
	NotApplicable
	User
	IO
	Arithmetic
	Range
)

// Default tags.
const (
	ArithmeticError = "arithmetic-error"
	EOFError        = "eof-error"
	InternalError   = "internal-error"
	IOError         = "io-error"
	ReaderError     = "reader-error"
	SymbolError     = "symbol-error"
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case Syntax:
		return "syntax"
	case EOF:
		return "end-of-input"
	case Unbound:
		return "symbol"
	case Arity:
		return "arity"
	case Type:
		return "type"
	case NotApplicable:
		return "not-applicable"
	case User:
		return "user"
	case IO:
		return "io"
	case Arithmetic:
		return "arithmetic"
	case Range:
		return "range"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Tag returns the default tag for errors of kind k.
func (k Kind) Tag() string {
	switch k {
	case Syntax:
		return ReaderError
	case EOF:
		return EOFError
	case Unbound:
		return SymbolError
	case IO:
		return IOError
	case Arithmetic:
		return ArithmeticError
	}

	return InternalError
}

// T (errs) is a starlisp error. Symbol, when set, is the tag object
// itself. Tag is always its name.
type T struct {
	Kind    Kind
	Tag     string
	Symbol  cell.I
	Message string
	Payload cell.I
	Err     error
}

// New creates an error of kind k with the default tag for k.
func New(k Kind, format string, args ...interface{}) *T {
	return &T{
		Kind:    k,
		Tag:     k.Tag(),
		Message: fmt.Sprintf(format, args...),
	}
}

// Tagged creates a user-raised error.
func Tagged(tag, message string, payload cell.I) *T {
	return &T{
		Kind:    User,
		Tag:     tag,
		Message: message,
		Payload: payload,
	}
}

// Wrap creates an error of kind k caused by err.
func Wrap(k Kind, err error, format string, args ...interface{}) *T {
	e := New(k, format, args...)
	e.Err = err

	if e.Message == "" {
		e.Message = err.Error()
	} else {
		e.Message += ": " + err.Error()
	}

	return e
}

// Error satisfies the error interface.
func (e *T) Error() string {
	if e.Message == "" {
		return "<" + e.Tag + ">"
	}

	return "<" + e.Tag + "> " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *T) Unwrap() error {
	return e.Err
}

// As converts err to a *T. Errors from outside starlisp become internal
// errors that wrap the original.
func As(err error) *T {
	if err == nil {
		return nil
	}

	var e *T
	if errors.As(err, &e) {
		return e
	}

	return Wrap(Internal, err, "")
}

// Is returns true if err is a starlisp error of kind k.
func Is(err error, k Kind) bool {
	var e *T
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == k
}

// Exit requests that the process terminate with the given status. It is
// not a starlisp error and is never intercepted by handlers.
type Exit int

// Error satisfies the error interface.
func (e Exit) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// IsExit returns the status and true if err is an exit request.
func IsExit(err error) (int, bool) {
	var e Exit
	if errors.As(err, &e) {
		return int(e), true
	}

	return 0, false
}
