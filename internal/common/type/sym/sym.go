// Released under an MIT license. See LICENSE.

// Package sym provides starlisp's symbol type. A symbol has a name and a
// single value cell. Interning is handled by the symbol table.
package sym

import (
	"strings"
	"unicode"

	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
)

const name = "symbol"

// T (sym) is a named value cell.
type T struct {
	name     string
	value    cell.I
	interned bool
}

type sym = T

// New creates an uninterned symbol. Its value cell starts unbound.
func New(v string) *sym {
	return &sym{name: v}
}

// Bound returns true if the symbol's value cell holds a value.
func (s *sym) Bound() bool {
	return s.value != nil
}

// Equal returns true if c is the same symbol.
func (s *sym) Equal(c cell.I) bool {
	o, ok := c.(*sym)

	return ok && o == s
}

// Hash returns a hash of the symbol's name.
func (s *sym) Hash() uint32 {
	return hashable.String(s.name)
}

// Interned returns true if the symbol is registered in a symbol table.
func (s *sym) Interned() bool {
	return s.interned
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	if !s.interned {
		return "#:" + s.name
	}

	return repr(s.name)
}

// MarkInterned records that the symbol is now registered in a table.
func (s *sym) MarkInterned() {
	s.interned = true
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Set stores v in the symbol's value cell. A nil v unbinds the symbol.
func (s *sym) Set(v cell.I) {
	s.value = v
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.name
}

// Value returns the contents of the value cell or nil if unbound.
func (s *sym) Value() cell.I {
	return s.value
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// repr returns s, or s wrapped in bars if reading s back would not
// produce a symbol with the same name.
func repr(s string) string {
	if needsBars(s) {
		return "|" + s + "|"
	}

	return s
}

func needsBars(s string) bool {
	if s == "" || s == "nil" || s == "." || num.Is(s) {
		return true
	}

	if strings.ContainsAny(s[:1], `#|`) {
		return true
	}

	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(`()";'`, r) {
			return true
		}
	}

	return false
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type has a hash.
	_ = hashable.I(&t)
}
