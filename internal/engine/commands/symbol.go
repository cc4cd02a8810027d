// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) symbols() []entry {
	return []entry{
		{"gensym", 0, 0, c.gensym},
		{"intern", 1, 1, c.intern},
		{"set", 2, 2, set},
		{"symbol-value", 1, 1, symbolValue},
		{"symbols", 0, 0, c.all},
	}
}

func (c *commands) all(_ []cell.I) (cell.I, error) {
	ss := c.task.Table().Symbols()

	cs := make([]cell.I, len(ss))
	for i, s := range ss {
		cs[i] = s
	}

	return list.New(cs...), nil
}

func (c *commands) gensym(_ []cell.I) (cell.I, error) {
	return c.task.Table().Gensym(), nil
}

func (c *commands) intern(args []cell.I) (cell.I, error) {
	switch v := args[0].(type) {
	case *str.T:
		return c.task.Table().Intern(v.String()), nil
	case *sym.T:
		return c.task.Table().InternSymbol(v), nil
	}

	return nil, errs.New(errs.Type, "intern: expected string or symbol, passed %s", literal.String(args[0]))
}

func set(args []cell.I) (cell.I, error) {
	s, err := validate.Symbol("set", args[0])
	if err != nil {
		return nil, err
	}

	s.Set(args[1])

	return args[1], nil
}

func symbolValue(args []cell.I) (cell.I, error) {
	s, err := validate.Symbol("symbol-value", args[0])
	if err != nil {
		return nil, err
	}

	v := s.Value()
	if v == nil {
		return pair.Null, nil
	}

	return v, nil
}
