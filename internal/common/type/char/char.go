// Released under an MIT license. See LICENSE.

// Package char provides starlisp's character type.
package char

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
)

const name = "char"

// T (char) wraps Go's rune type.
type T rune

type char = T

// Equal returns true if c is the same character.
func (ch char) Equal(c cell.I) bool {
	o, ok := c.(char)

	return ok && o == ch
}

// Hash returns a hash consistent with Equal.
func (ch char) Hash() uint32 {
	return uint32(ch)
}

// Literal returns the literal representation of the char ch.
func (ch char) Literal() string {
	return `#\` + string(ch)
}

// Name returns the type name for the char ch.
func (ch char) Name() string {
	return name
}

// String returns the character itself.
func (ch char) String() string {
	return string(ch)
}

// Is returns true if c is a char.
func Is(c cell.I) bool {
	_, ok := c.(char)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(t)

	// The char type has a literal representation.
	_ = literal.I(t)

	// The char type has a structural hash.
	_ = hashable.I(t)
}
