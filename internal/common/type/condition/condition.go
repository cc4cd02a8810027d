// Released under an MIT license. See LICENSE.

// Package condition provides the value handed to error handlers.
package condition

import (
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

const name = "condition"

// T (condition) packages an error and its interned tag.
type T struct {
	err *errs.T
	tag *sym.T
}

type condition = T

// New creates a condition for err. The caller supplies the tag symbol.
func New(err *errs.T, tag *sym.T) *condition {
	return &condition{err: err, tag: tag}
}

// Equal returns true if c is the same condition.
func (c *condition) Equal(o cell.I) bool {
	t, ok := o.(*condition)

	return ok && t == c
}

// Err returns the underlying error.
func (c *condition) Err() *errs.T {
	return c.err
}

// Literal returns the printed representation of the condition c.
func (c *condition) Literal() string {
	if c.err.Message == "" {
		return "#<" + name + " " + c.tag.String() + ">"
	}

	return "#<" + name + " " + c.tag.String() + ": " + c.err.Message + ">"
}

// Message returns the error message.
func (c *condition) Message() string {
	return c.err.Message
}

// Name returns the type name for conditions.
func (c *condition) Name() string {
	return name
}

// Payload returns the value raised with the error, or nil.
func (c *condition) Payload() cell.I {
	return c.err.Payload
}

// Tag returns the symbolic tag.
func (c *condition) Tag() *sym.T {
	return c.tag
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t condition

	// The condition type is a cell.
	_ = cell.I(&t)

	// The condition type has a printed representation.
	_ = literal.I(&t)
}
