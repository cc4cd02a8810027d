// Released under an MIT license. See LICENSE.

// Package reader converts text into starlisp values. Characters are
// consumed one at a time from a source with pushback. There is no
// separate token stream.
package reader

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/conduit"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/table"
	"github.com/michaelmacinnis/starlisp/internal/common/type/array"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

type locator interface {
	Loc() *loc.T
}

// T (reader) reads values from a character source.
type T struct {
	quote  *sym.T
	source conduit.Source
	table  *table.T
}

type reader = T

// New creates a reader for src that interns symbols in tab.
func New(tab *table.T, src conduit.Source) *reader {
	return &reader{
		quote:  tab.Intern("quote"),
		source: src,
		table:  tab,
	}
}

// Read returns the next value. If the source is exhausted before a value
// starts the error has kind errs.EOF. If it is exhausted part way through
// a value the error has kind errs.Syntax.
func (r *reader) Read() (cell.I, error) {
	c, err := r.skip()
	if err == io.EOF {
		return nil, r.fail(errs.EOF, "end of input")
	} else if err != nil {
		return nil, err
	}

	return r.value(c)
}

func (r *reader) back(c rune) {
	r.source.Back(c)
}

func (r *reader) escape() (rune, error) {
	c, err := r.next("string")
	if err != nil {
		return 0, err
	}

	switch c {
	case 'a':
		return '\a', nil
	case 'b':
		return '\b', nil
	case 'e', 'E':
		return '\x1b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case 'x':
		return r.hex(2)
	case 'u':
		return r.hex(4)
	case 'U':
		return r.hex(8)
	}

	return c, nil
}

func (r *reader) fail(k errs.Kind, format string, args ...interface{}) error {
	if l, ok := r.source.(locator); ok {
		format = l.Loc().String() + ": " + format
	}

	return errs.New(k, format, args...)
}

func (r *reader) hex(n int) (rune, error) {
	digits := make([]rune, 0, n)

	for i := 0; i < n; i++ {
		c, err := r.next("string")
		if err != nil {
			return 0, err
		}

		digits = append(digits, c)
	}

	v, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return 0, r.fail(errs.Syntax, "invalid escape %q", string(digits))
	}

	return rune(v), nil
}

// list reads the elements of a list after the opening parenthesis.
func (r *reader) list() ([]cell.I, cell.I, error) {
	elements := []cell.I{}

	for {
		c, err := r.skip()
		if err == io.EOF {
			return nil, nil, r.fail(errs.Syntax, "unterminated list")
		} else if err != nil {
			return nil, nil, err
		}

		if c == ')' {
			return elements, pair.Null, nil
		}

		if c == '.' {
			dot, err := r.dot()
			if err != nil {
				return nil, nil, err
			}

			if dot {
				if len(elements) == 0 {
					return nil, nil, r.fail(errs.Syntax, "unexpected .")
				}

				tail, err := r.tail()
				if err != nil {
					return nil, nil, err
				}

				return elements, tail, nil
			}
		}

		v, err := r.value(c)
		if err != nil {
			return nil, nil, err
		}

		elements = append(elements, v)
	}
}

// dot returns true if the '.' just read stands alone.
func (r *reader) dot() (bool, error) {
	c, err := r.source.Next()
	if err == io.EOF {
		return true, nil
	} else if err != nil {
		return false, err
	}

	r.back(c)

	return delimiter(c), nil
}

func (r *reader) next(within string) (rune, error) {
	c, err := r.source.Next()
	if err == io.EOF {
		return 0, r.fail(errs.Syntax, "unterminated %s", within)
	}

	return c, err
}

// nested reads a value that must be present.
func (r *reader) nested(within string) (cell.I, error) {
	c, err := r.skip()
	if err == io.EOF {
		return nil, r.fail(errs.Syntax, "unterminated %s", within)
	} else if err != nil {
		return nil, err
	}

	return r.value(c)
}

func (r *reader) sharp() (cell.I, error) {
	c, err := r.next("# syntax")
	if err != nil {
		return nil, err
	}

	switch c {
	case '\\':
		c, err = r.next("character")
		if err != nil {
			return nil, err
		}

		return char.T(c), nil

	case '(':
		elements, tail, err := r.list()
		if err != nil {
			return nil, err
		}

		if tail != pair.Null {
			return nil, r.fail(errs.Syntax, "dotted array")
		}

		return array.FromList(list.New(elements...)), nil
	}

	return nil, r.fail(errs.Syntax, "unknown syntax #%c", c)
}

// skip discards whitespace, comments and datum comments and returns the
// first character of the next value.
func (r *reader) skip() (rune, error) {
	for {
		c, err := r.source.Next()
		if err != nil {
			return 0, err
		}

		switch {
		case unicode.IsSpace(c):
			continue

		case c == ';':
			for c != '\n' {
				c, err = r.source.Next()
				if err != nil {
					return 0, err
				}
			}

			continue

		case c == '#':
			n, err := r.source.Next()
			if err == nil && n == ';' {
				_, err = r.nested("datum comment")
				if err != nil {
					return 0, err
				}

				continue
			}

			if err == nil {
				r.back(n)
			} else if err != io.EOF {
				return 0, err
			}
		}

		return c, nil
	}
}

func (r *reader) string() (cell.I, error) {
	var b strings.Builder

	for {
		c, err := r.next("string")
		if err != nil {
			return nil, err
		}

		switch c {
		case '"':
			return str.New(b.String()), nil

		case '\\':
			c, err = r.escape()
			if err != nil {
				return nil, err
			}
		}

		b.WriteRune(c)
	}
}

func (r *reader) symbol() (cell.I, error) {
	var b strings.Builder

	for {
		c, err := r.next("symbol")
		if err != nil {
			return nil, err
		}

		if c == '|' {
			break
		}

		b.WriteRune(c)
	}

	s := b.String()
	if s == "nil" {
		return pair.Null, nil
	}

	return r.table.Intern(s), nil
}

// tail reads the value after a dot and the closing parenthesis.
func (r *reader) tail() (cell.I, error) {
	v, err := r.nested("list")
	if err != nil {
		return nil, err
	}

	c, err := r.skip()
	if err == io.EOF {
		return nil, r.fail(errs.Syntax, "unterminated list")
	} else if err != nil {
		return nil, err
	}

	if c != ')' {
		return nil, r.fail(errs.Syntax, "expected ) after dotted tail")
	}

	return v, nil
}

func (r *reader) token(first rune) (string, error) {
	var b strings.Builder

	b.WriteRune(first)

	for {
		c, err := r.source.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}

		if delimiter(c) {
			r.back(c)

			break
		}

		b.WriteRune(c)
	}

	return b.String(), nil
}

// value reads the value starting with c.
func (r *reader) value(c rune) (cell.I, error) {
	switch c {
	case '(':
		elements, tail, err := r.list()
		if err != nil {
			return nil, err
		}

		return list.Dotted(tail, elements...), nil

	case ')':
		return nil, r.fail(errs.Syntax, "unexpected )")

	case '\'':
		v, err := r.nested("quote")
		if err != nil {
			return nil, err
		}

		return list.New(r.quote, v), nil

	case '"':
		return r.string()

	case '|':
		return r.symbol()

	case '#':
		return r.sharp()
	}

	s, err := r.token(c)
	if err != nil {
		return nil, err
	}

	return r.atom(s)
}

func (r *reader) atom(s string) (cell.I, error) {
	if s == "." {
		return nil, r.fail(errs.Syntax, "unexpected .")
	}

	if n, ok := num.Parse(s); ok {
		return n, nil
	}

	if s == "nil" {
		return pair.Null, nil
	}

	return r.table.Intern(s), nil
}

func delimiter(c rune) bool {
	return unicode.IsSpace(c) || strings.ContainsRune(`()";'`, c)
}
