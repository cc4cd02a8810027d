// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/vector"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) pairs() []entry {
	return []entry{
		{"car", 1, 1, car},
		{"cdr", 1, 1, cdr},
		{"cons", 2, 2, cons},
		{"length", 1, 1, length},
		{"rplaca", 2, 2, rplaca},
		{"rplacd", 2, 2, rplacd},
	}
}

func car(args []cell.I) (cell.I, error) {
	if !list.Is(args[0]) {
		return nil, errs.New(errs.Type, "car: expected list, passed %s", literal.String(args[0]))
	}

	return pair.Car(args[0]), nil
}

func cdr(args []cell.I) (cell.I, error) {
	if !list.Is(args[0]) {
		return nil, errs.New(errs.Type, "cdr: expected list, passed %s", literal.String(args[0]))
	}

	return pair.Cdr(args[0]), nil
}

func cons(args []cell.I) (cell.I, error) {
	return pair.Cons(args[0], args[1]), nil
}

func length(args []cell.I) (cell.I, error) {
	if list.Is(args[0]) {
		return num.Fixnum(list.Length(args[0])), nil
	}

	if v, ok := args[0].(vector.I); ok {
		return num.Fixnum(v.Length()), nil
	}

	return nil, errs.New(errs.Type, "length: expected sequence, passed %s", literal.String(args[0]))
}

func rplaca(args []cell.I) (cell.I, error) {
	p, err := validate.Pair("rplaca", args[0])
	if err != nil {
		return nil, err
	}

	pair.SetCar(p, args[1])

	return p, nil
}

func rplacd(args []cell.I) (cell.I, error) {
	p, err := validate.Pair("rplacd", args[0])
	if err != nil {
		return nil, err
	}

	pair.SetCdr(p, args[1])

	return p, nil
}
