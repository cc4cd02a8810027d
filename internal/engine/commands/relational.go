// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/vector"
	"github.com/michaelmacinnis/starlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/condition"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) relational() []entry {
	return []entry{
		{"=", 2, 2, c.numericEqual},
		{"atom?", 1, 1, c.isAtom},
		{"char=", 2, 2, c.charEqual},
		{"eq?", 2, 2, c.eq},
		{"eql?", 2, 2, c.eq},
		{"equal?", 2, 2, c.equal},
		{"neg?", 1, 1, c.isNeg},
		{"sxhash", 1, 1, sxhash},
		{"type?", 2, 2, c.isType},
	}
}

// Eq returns true if a and b are the same object. Numbers and characters
// are the same if they have the same variant and value.
func Eq(a, b cell.I) bool {
	switch x := a.(type) {
	case num.I:
		y, ok := b.(num.I)

		return ok && num.Eql(x, y)
	case char.T:
		y, ok := b.(char.T)

		return ok && x == y
	}

	return a == b
}

func (c *commands) charEqual(args []cell.I) (cell.I, error) {
	a, err := validate.Char("char=", args[0])
	if err != nil {
		return nil, err
	}

	b, err := validate.Char("char=", args[1])
	if err != nil {
		return nil, err
	}

	return c.bool(a == b), nil
}

func (c *commands) eq(args []cell.I) (cell.I, error) {
	return c.bool(Eq(args[0], args[1])), nil
}

func (c *commands) equal(args []cell.I) (cell.I, error) {
	return c.bool(args[0].Equal(args[1])), nil
}

func (c *commands) isAtom(args []cell.I) (cell.I, error) {
	return c.bool(!pair.Is(args[0])), nil
}

func (c *commands) isNeg(args []cell.I) (cell.I, error) {
	n, err := validate.Number("neg?", args[0])
	if err != nil {
		return nil, err
	}

	return c.bool(num.Neg(n)), nil
}

func (c *commands) isType(args []cell.I) (cell.I, error) {
	s, err := validate.Symbol("type?", args[0])
	if err != nil {
		return nil, err
	}

	is, ok := c.types[s]

	return c.bool(ok && is(args[1])), nil
}

func (c *commands) numericEqual(args []cell.I) (cell.I, error) {
	a, err := validate.Number("=", args[0])
	if err != nil {
		return nil, err
	}

	b, err := validate.Number("=", args[1])
	if err != nil {
		return nil, err
	}

	n, ok := num.Cmp(a, b)

	return c.bool(ok && n == 0), nil
}

func (c *commands) predicates() map[*sym.T]func(cell.I) bool {
	tab := c.task.Table()

	m := map[string]func(cell.I) bool{
		"array":     vector.Is,
		"bignum":    isBignum,
		"char":      char.Is,
		"condition": isCondition,
		"cons":      pair.Is,
		"fixnum":    isFixnum,
		"flonum":    isFlonum,
		"integer":   isInteger,
		"list":      list.Is,
		"number":    isNumber,
		"procedure": c.isProcedure,
		"stream":    stream.Is,
		"string":    str.Is,
		"subr":      builtin.Is,
		"symbol":    sym.Is,
	}

	types := make(map[*sym.T]func(cell.I) bool, len(m))
	for k, v := range m {
		types[tab.Intern(k)] = v
	}

	return types
}

// A procedure is a builtin or a lambda expression.
func (c *commands) isProcedure(v cell.I) bool {
	if builtin.Is(v) {
		return true
	}

	return pair.Is(v) && pair.Car(v) == c.task.Table().Intern("lambda")
}

func isBignum(c cell.I) bool {
	_, ok := c.(*num.Bignum)

	return ok
}

func isCondition(c cell.I) bool {
	_, ok := c.(*condition.T)

	return ok
}

func isFixnum(c cell.I) bool {
	_, ok := c.(num.Fixnum)

	return ok
}

func isFlonum(c cell.I) bool {
	_, ok := c.(num.Flonum)

	return ok
}

func isInteger(c cell.I) bool {
	n, ok := c.(num.I)

	return ok && num.IsInteger(n)
}

func isNumber(c cell.I) bool {
	_, ok := c.(num.I)

	return ok
}

func sxhash(args []cell.I) (cell.I, error) {
	return num.Fixnum(hashable.Value(args[0])), nil
}
