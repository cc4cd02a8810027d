// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

// Kinds of expression.
type kind int

const (
	self kind = iota
	variable
	quoted
	conditional
	procedure
	application
)

// form classifies c so that the evaluator dispatches with a single switch.
// Lambda and macro expressions are lists headed by the lambda or macro
// symbol. They evaluate to themselves.
func (t *task) form(c cell.I) kind {
	switch v := c.(type) {
	case *sym.T:
		return variable
	case *pair.T:
		if v == pair.Null {
			return self
		}

		switch pair.Car(v) {
		case t.quote:
			return quoted
		case t.ifs:
			return conditional
		case t.lambda, t.macro:
			return procedure
		}

		return application
	}

	return self
}

// conditional splits (if test then [else]) into test and (then [else]).
func (t *task) conditional(c cell.I) (cell.I, cell.I, error) {
	args := pair.Cdr(c)

	n := 0

	l := args
	for ; pair.Is(l); l = pair.Cdr(l) {
		n++
	}

	if n < 2 || n > 3 || l != pair.Null {
		return nil, nil, malformed("if", c)
	}

	return pair.Car(args), pair.Cdr(args), nil
}

// expand rewrites a call to macro m as an application of the lambda with
// the macro's parameters and body to the quoted call form c.
func (t *task) expand(m, c cell.I) cell.I {
	return list.New(pair.Cons(t.lambda, pair.Cdr(m)), list.New(t.quote, c))
}

func malformed(label string, c cell.I) error {
	e := errs.New(errs.Syntax, "malformed %s: %s", label, literal.String(c))
	e.Tag = errs.InternalError

	return e
}

func proper(l cell.I) bool {
	for pair.Is(l) {
		l = pair.Cdr(l)
	}

	return l == pair.Null
}
