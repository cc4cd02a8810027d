// Released under an MIT license. See LICENSE.

// Package validate provides argument checks shared by the evaluator and
// the builtins. Every check returns an error rather than panicking.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/vector"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/condition"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

// Arity checks that n arguments satisfies the range min to max.
// A negative max means there is no upper bound.
func Arity(label string, n, min, max int) error {
	if n < min {
		return errs.New(errs.Arity, "%s: expected %s, passed %d", label, atLeast(min, max), n)
	}

	if max >= 0 && n > max {
		return errs.New(errs.Arity, "%s: expected %s, passed %d", label, atMost(min, max), n)
	}

	return nil
}

// Count returns "n label" with the plural suffix p added when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Char returns c as a character.
func Char(label string, c cell.I) (char.T, error) {
	ch, ok := c.(char.T)
	if !ok {
		return 0, mismatch(label, "char", c)
	}

	return ch, nil
}

// Condition returns c as a condition.
func Condition(label string, c cell.I) (*condition.T, error) {
	v, ok := c.(*condition.T)
	if !ok {
		return nil, mismatch(label, "condition", c)
	}

	return v, nil
}

// Int returns c as an int64. Bignums outside the int64 range are rejected.
func Int(label string, c cell.I) (int64, error) {
	n, err := Integer(label, c)
	if err != nil {
		return 0, err
	}

	i, ok := num.Int(n)
	if !ok {
		return 0, errs.New(errs.Range, "%s: %s is too large", label, n.Literal())
	}

	return i, nil
}

// Integer returns c as an exact integer.
func Integer(label string, c cell.I) (num.I, error) {
	n, ok := c.(num.I)
	if !ok || !num.IsInteger(n) {
		return nil, mismatch(label, "integer", c)
	}

	return n, nil
}

// Number returns c as a number.
func Number(label string, c cell.I) (num.I, error) {
	n, ok := c.(num.I)
	if !ok {
		return nil, mismatch(label, "number", c)
	}

	return n, nil
}

// Pair returns c as a cons. Nil is not accepted.
func Pair(label string, c cell.I) (*pair.T, error) {
	if !pair.Is(c) {
		return nil, mismatch(label, "cons", c)
	}

	return pair.To(c), nil
}

// Stream returns c as a stream.
func Stream(label string, c cell.I) (*stream.T, error) {
	s, ok := c.(*stream.T)
	if !ok {
		return nil, mismatch(label, "stream", c)
	}

	return s, nil
}

// String returns c as a string.
func String(label string, c cell.I) (*str.T, error) {
	s, ok := c.(*str.T)
	if !ok {
		return nil, mismatch(label, "string", c)
	}

	return s, nil
}

// Symbol returns c as a symbol. Anything else is a misused symbol.
func Symbol(label string, c cell.I) (*sym.T, error) {
	s, ok := c.(*sym.T)
	if !ok {
		return nil, errs.New(errs.Unbound, "%s: expected symbol, passed %s", label, literal.String(c))
	}

	return s, nil
}

// Vector returns c as an array or string.
func Vector(label string, c cell.I) (vector.I, error) {
	v, ok := c.(vector.I)
	if !ok {
		return nil, mismatch(label, "array", c)
	}

	return v, nil
}

func atLeast(min, max int) string {
	if min == max {
		return Count(min, "argument", "s")
	}

	return "at least " + Count(min, "argument", "s")
}

func atMost(min, max int) string {
	if min == max {
		return Count(max, "argument", "s")
	}

	return "at most " + Count(max, "argument", "s")
}

func mismatch(label, expected string, c cell.I) error {
	return errs.New(errs.Type, "%s: expected %s, passed %s", label, expected, literal.String(c))
}
