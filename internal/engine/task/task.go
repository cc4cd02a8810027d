// Released under an MIT license. See LICENSE.

// Package task provides the starlisp evaluator.
//
// Evaluation is dynamically scoped. Every symbol has one value cell and
// binding a lambda parameter overwrites that cell after saving its old
// contents on the binding stack. Each non-tail evaluation pushes a marker
// and unwinds to it when it returns, successfully or not. Tail positions
// loop instead of recursing so they push nothing.
package task

import (
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/frame"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/table"
	"github.com/michaelmacinnis/starlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/starlisp/internal/common/type/condition"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

// DefaultLimit is the default maximum nesting of non-tail evaluations.
const DefaultLimit = 100000

// T (task) is an evaluator. A task is not safe for concurrent use.
type T struct {
	depth int
	frame *frame.T
	limit int
	table *table.T

	ifs    *sym.T
	lambda *sym.T
	macro  *sym.T
	quote  *sym.T
}

type task = T

// New creates a task that interns symbols in tab.
func New(tab *table.T) *task {
	return &task{
		frame: frame.New(),
		limit: DefaultLimit,
		table: tab,

		ifs:    tab.Intern("if"),
		lambda: tab.Intern("lambda"),
		macro:  tab.Intern("macro"),
		quote:  tab.Intern("quote"),
	}
}

// Apply calls fn with args. The arguments are not evaluated again.
func (t *task) Apply(fn cell.I, args []cell.I) (cell.I, error) {
	if b, ok := fn.(*builtin.T); ok {
		return t.call(b, args)
	}

	quoted := make([]cell.I, len(args))
	for i, a := range args {
		quoted[i] = list.New(t.quote, a)
	}

	return t.Eval(pair.Cons(fn, list.New(quoted...)))
}

// Condition packages err as a value that can be handed to a handler.
func (t *task) Condition(err error) *condition.T {
	e := errs.As(err)

	tag, ok := e.Symbol.(*sym.T)
	if !ok {
		tag = t.table.Intern(e.Tag)
		e.Symbol = tag
	}

	return condition.New(e, tag)
}

// Depth returns the number of evaluations in progress.
func (t *task) Depth() int {
	return t.depth
}

// Eval evaluates c.
func (t *task) Eval(c cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil
		err = errs.New(errs.Internal, "%v", r)
	}()

	return t.eval(c)
}

// Frame returns the task's binding stack.
func (t *task) Frame() *frame.T {
	return t.frame
}

// SetLimit sets the maximum nesting of non-tail evaluations.
func (t *task) SetLimit(n int) {
	t.limit = n
}

// Table returns the task's symbol table.
func (t *task) Table() *table.T {
	return t.table
}

// bind binds params to args. The number of arguments is checked before
// any symbol is bound.
func (t *task) bind(params cell.I, args []cell.I) error {
	n := 0
	rest := false

	for p := params; p != pair.Null; p = pair.Cdr(p) {
		if sym.Is(p) {
			rest = true

			break
		}

		if !pair.Is(p) {
			return errs.New(errs.Type, "malformed parameter list %s", literal.String(params))
		}

		if !sym.Is(pair.Car(p)) {
			return errs.New(errs.Unbound, "parameter %s is not a symbol", literal.String(pair.Car(p)))
		}

		n++
	}

	if len(args) < n || (!rest && len(args) > n) {
		max := n
		if rest {
			max = builtin.Many
		}

		return validate.Arity("lambda", len(args), n, max)
	}

	p := params
	for i := 0; i < n; i++ {
		t.frame.Bind(pair.Car(p).(*sym.T), args[i])

		p = pair.Cdr(p)
	}

	if rest {
		t.frame.Bind(p.(*sym.T), list.New(args[n:]...))
	}

	return nil
}

func (t *task) call(b *builtin.T, args []cell.I) (cell.I, error) {
	min, max := b.Arity()

	err := validate.Arity(b.Label(), len(args), min, max)
	if err != nil {
		return nil, err
	}

	return b.Call(args)
}

// eval evaluates c inside a new marker.
func (t *task) eval(c cell.I) (cell.I, error) {
	if t.depth >= t.limit {
		return nil, errs.New(errs.Internal, "evaluation nested too deeply")
	}

	t.depth++
	t.frame.Mark()

	defer func() {
		t.frame.Unwind()
		t.depth--
	}()

	return t.tail(c)
}

// evlis evaluates each element of the argument list l.
func (t *task) evlis(l cell.I) ([]cell.I, error) {
	args := []cell.I{}

	for ; pair.Is(l); l = pair.Cdr(l) {
		v, err := t.eval(pair.Car(l))
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	if l != pair.Null {
		return nil, errs.New(errs.Type, "dotted argument list")
	}

	return args, nil
}

// tail evaluates c without pushing a marker. Expressions in tail position
// replace c and go around the loop again.
//
//nolint:cyclop,funlen
func (t *task) tail(c cell.I) (cell.I, error) {
	for {
		switch t.form(c) {
		case self:
			return c, nil

		case variable:
			v := c.(*sym.T).Value()
			if v == nil {
				return pair.Null, nil
			}

			return v, nil

		case quoted:
			if !pair.Is(pair.Cdr(c)) {
				return nil, malformed("quote", c)
			}

			return pair.Cadr(c), nil

		case conditional:
			test, branches, err := t.conditional(c)
			if err != nil {
				return nil, err
			}

			v, err := t.eval(test)
			if err != nil {
				return nil, err
			}

			if v == pair.Null {
				branches = pair.Cdr(branches)
				if branches == pair.Null {
					return pair.Null, nil
				}
			}

			c = pair.Car(branches)

		case procedure:
			return c, nil

		case application:
			op, err := t.eval(pair.Car(c))
			if err != nil {
				return nil, err
			}

			switch t.form(op) {
			case procedure:
				if pair.Car(op) == t.macro {
					expansion, err := t.eval(t.expand(op, c))
					if err != nil {
						return nil, err
					}

					c = expansion

					continue
				}

				if !pair.Is(pair.Cdr(op)) || !proper(pair.Cddr(op)) {
					return nil, malformed("lambda", op)
				}

				args, err := t.evlis(pair.Cdr(c))
				if err != nil {
					return nil, err
				}

				err = t.bind(pair.Cadr(op), args)
				if err != nil {
					return nil, err
				}

				body := pair.Cddr(op)
				if body == pair.Null {
					return pair.Null, nil
				}

				for ; pair.Is(pair.Cdr(body)); body = pair.Cdr(body) {
					_, err = t.eval(pair.Car(body))
					if err != nil {
						return nil, err
					}
				}

				c = pair.Car(body)

			default:
				b, ok := op.(*builtin.T)
				if !ok {
					return nil, errs.New(errs.NotApplicable, "%s is not applicable", literal.String(op))
				}

				args, err := t.evlis(pair.Cdr(c))
				if err != nil {
					return nil, err
				}

				return t.call(b, args)
			}
		}
	}
}
