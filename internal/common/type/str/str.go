// Released under an MIT license. See LICENSE.

// Package str provides starlisp's string type. A string is an array
// whose every element is a character.
package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/vector"
	"github.com/michaelmacinnis/starlisp/internal/common/type/array"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
)

const name = "string"

// T (str) is a mutable sequence of characters.
type T struct {
	r []rune
}

type str = T

// New creates a new str cell.
func New(v string) *str {
	return &str{r: []rune(v)}
}

// Make creates a string of length n filled with ch.
func Make(n int, ch char.T) *str {
	r := make([]rune, n)
	for i := range r {
		r[i] = rune(ch)
	}

	return &str{r: r}
}

// Equal returns true if the cell c holds the same characters.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && string(o.r) == string(s.r)
}

// Hash returns a hash consistent with Equal.
func (s *str) Hash() uint32 {
	return hashable.String(string(s.r))
}

// Length returns the number of characters in s.
func (s *str) Length() int {
	return len(s.r)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return Quote(string(s.r))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Ref returns the character at index i.
func (s *str) Ref(i int) (cell.I, error) {
	if err := array.Check(i, len(s.r)); err != nil {
		return nil, err
	}

	return char.T(s.r[i]), nil
}

// Set replaces the character at index i with v, which must be a character.
func (s *str) Set(i int, v cell.I) (cell.I, error) {
	ch, ok := v.(char.T)
	if !ok {
		return nil, errs.New(errs.Type, "only characters may be stored in a string, got %s", literal.String(v))
	}

	if err := array.Check(i, len(s.r)); err != nil {
		return nil, err
	}

	old := char.T(s.r[i])
	s.r[i] = rune(ch)

	return old, nil
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(s.r)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// Quote returns s as a double-quoted literal. Printable characters outside
// ASCII are written as they are. Other escapes are those the reader decodes.
func Quote(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	done := 0

	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if w > 1 && unicode.IsPrint(r) {
			b.WriteString(escape(s[done:i]))
			b.WriteString(s[i : i+w])
			done = i + w
		}

		i += w
	}

	b.WriteString(escape(s[done:]))
	b.WriteByte('"')

	return b.String()
}

func escape(s string) string {
	if s == "" {
		return s
	}

	q := adapted.CanonicalString(s)

	// Strip the $'...' wrapper. Single quotes need no escape inside
	// double quotes but double quotes do.
	q = q[2 : len(q)-1]
	q = strings.ReplaceAll(q, `\'`, `'`)
	q = strings.ReplaceAll(q, `"`, `\"`)

	return q
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a vector.
	_ = vector.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type has a structural hash.
	_ = hashable.I(&t)
}
