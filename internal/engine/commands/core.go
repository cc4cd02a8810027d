// Released under an MIT license. See LICENSE.

package commands

import (
	"time"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) core() []entry {
	return []entry{
		{"%try", 2, 2, c.try},
		{"apply", 2, 2, c.apply},
		{"condition-message", 1, 1, conditionMessage},
		{"condition-tag", 1, 1, conditionTag},
		{"eval", 1, 1, c.eval},
		{"exit", 0, 1, exit},
		{"get-time", 0, 0, getTime},
		{"running-compiled?", 0, 0, runningCompiled},
		{"throw", 1, 2, throw},
	}
}

func (c *commands) apply(args []cell.I) (cell.I, error) {
	if !list.Is(args[1]) {
		return nil, errs.New(errs.Type, "apply: expected list, passed %s", literal.String(args[1]))
	}

	v, tail := list.Slice(args[1])
	if tail != pair.Null {
		return nil, errs.New(errs.Type, "apply: dotted argument list")
	}

	return c.task.Apply(args[0], v)
}

func (c *commands) eval(args []cell.I) (cell.I, error) {
	return c.task.Eval(args[0])
}

// try calls the thunk args[0]. If it fails the handler args[1] is called
// with a condition describing the failure.
func (c *commands) try(args []cell.I) (cell.I, error) {
	v, err := c.task.Apply(args[0], nil)
	if err == nil {
		return v, nil
	}

	if _, ok := errs.IsExit(err); ok {
		return nil, err
	}

	return c.task.Apply(args[1], []cell.I{c.task.Condition(err)})
}

func conditionMessage(args []cell.I) (cell.I, error) {
	v, err := validate.Condition("condition-message", args[0])
	if err != nil {
		return nil, err
	}

	return str.New(v.Message()), nil
}

func conditionTag(args []cell.I) (cell.I, error) {
	v, err := validate.Condition("condition-tag", args[0])
	if err != nil {
		return nil, err
	}

	return v.Tag(), nil
}

func exit(args []cell.I) (cell.I, error) {
	if len(args) == 0 {
		return nil, errs.Exit(0)
	}

	n, err := validate.Int("exit", args[0])
	if err != nil {
		return nil, err
	}

	return nil, errs.Exit(n)
}

func getTime(_ []cell.I) (cell.I, error) {
	return num.Fixnum(time.Now().UnixMilli()), nil
}

func runningCompiled(_ []cell.I) (cell.I, error) {
	return pair.Null, nil
}

// throw raises an error tagged with the symbol args[0] and an optional
// message. A condition passed as the only argument is raised again.
func throw(args []cell.I) (cell.I, error) {
	if v, err := validate.Condition("throw", args[0]); err == nil {
		if len(args) == 1 {
			return nil, v.Err()
		}
	}

	tag, err := validate.Symbol("throw", args[0])
	if err != nil {
		return nil, err
	}

	var e *errs.T

	switch {
	case len(args) == 1:
		e = errs.Tagged(tag.String(), "", nil)
	case str.Is(args[1]):
		e = errs.Tagged(tag.String(), args[1].(*str.T).String(), nil)
	default:
		e = errs.Tagged(tag.String(), literal.String(args[1]), args[1])
	}

	e.Symbol = tag

	return nil, e
}
