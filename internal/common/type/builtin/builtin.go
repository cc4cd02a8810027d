// Released under an MIT license. See LICENSE.

// Package builtin provides starlisp's native procedure type.
package builtin

import (
	"fmt"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
)

const name = "subr"

// Many is the maximum for builtins that accept any number of arguments.
const Many = -1

// Func is the Go implementation of a builtin.
type Func func(args []cell.I) (cell.I, error)

// T (builtin) is a native procedure with an arity range.
type T struct {
	fn    Func
	label string
	max   int
	min   int
}

type builtin = T

// New creates a builtin called label accepting min to max arguments.
func New(label string, min, max int, fn Func) *builtin {
	return &builtin{
		fn:    fn,
		label: label,
		max:   max,
		min:   min,
	}
}

// Arity returns the minimum and maximum number of arguments.
// A maximum of Many means there is no upper bound.
func (b *builtin) Arity() (int, int) {
	return b.min, b.max
}

// Call invokes the builtin with args. The number of arguments must
// already have been checked. A panic in the implementation becomes an
// internal error.
func (b *builtin) Call(args []cell.I) (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil
		err = errs.New(errs.Internal, "%s: %v", b.label, r)
	}()

	c, err = b.fn(args)
	if err == nil && c == nil {
		err = errs.New(errs.Internal, "%s: no value returned", b.label)
	}

	return c, err
}

// Equal returns true if c is the same builtin.
func (b *builtin) Equal(c cell.I) bool {
	o, ok := c.(*builtin)

	return ok && o == b
}

// Label returns the name the builtin was created with.
func (b *builtin) Label() string {
	return b.label
}

// Literal returns the printed representation of the builtin b.
func (b *builtin) Literal() string {
	return fmt.Sprintf("#<%s %s>", name, b.label)
}

// Name returns the type name for builtins.
func (b *builtin) Name() string {
	return name
}

// Is returns true if c is a builtin.
func Is(c cell.I) bool {
	_, ok := c.(*builtin)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a printed representation.
	_ = literal.I(&t)
}
