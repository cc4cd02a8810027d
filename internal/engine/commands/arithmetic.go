// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) arithmetic() []entry {
	return []entry{
		{"*", 2, 2, numeric("*", total(num.Mul))},
		{"+", 2, 2, numeric("+", total(num.Add))},
		{"-", 2, 2, numeric("-", total(num.Sub))},
		{"/", 2, 2, numeric("/", num.Div)},
		{"ash", 2, 2, integral("ash", num.Ash)},
		{"mod", 2, 2, integral("mod", num.Mod)},
	}
}

type binary func(a, b num.I) (num.I, error)

func integral(label string, op binary) func([]cell.I) (cell.I, error) {
	return func(args []cell.I) (cell.I, error) {
		a, err := validate.Integer(label, args[0])
		if err != nil {
			return nil, err
		}

		b, err := validate.Integer(label, args[1])
		if err != nil {
			return nil, err
		}

		return op(a, b)
	}
}

func numeric(label string, op binary) func([]cell.I) (cell.I, error) {
	return func(args []cell.I) (cell.I, error) {
		a, err := validate.Number(label, args[0])
		if err != nil {
			return nil, err
		}

		b, err := validate.Number(label, args[1])
		if err != nil {
			return nil, err
		}

		return op(a, b)
	}
}

func total(op func(a, b num.I) num.I) binary {
	return func(a, b num.I) (num.I, error) {
		return op(a, b), nil
	}
}
