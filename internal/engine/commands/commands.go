// Released under an MIT license. See LICENSE.

// Package commands provides starlisp's builtin procedures.
package commands

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/starlisp/internal/common/type/create"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
	"github.com/michaelmacinnis/starlisp/internal/engine/task"
)

// Names of the standard stream variables.
const (
	StandardError  = "*standard-error*"
	StandardInput  = "*standard-input*"
	StandardOutput = "*standard-output*"
)

type commands struct {
	task *task.T
	t    *sym.T

	in  *sym.T
	out *sym.T

	stderr *sym.T
	stdin  *sym.T
	stdout *sym.T

	types map[*sym.T]func(cell.I) bool
}

type entry struct {
	name string
	min  int
	max  int
	fn   builtin.Func
}

// Builtins returns the builtin procedures for the task t. Procedures that
// default to a standard stream read the current value of the matching
// variable each time they are called.
func Builtins(t *task.T) []*builtin.T {
	tab := t.Table()

	c := &commands{
		task: t,
		t:    tab.Intern("t"),

		in:  tab.Intern(stream.In),
		out: tab.Intern(stream.Out),

		stderr: tab.Intern(StandardError),
		stdin:  tab.Intern(StandardInput),
		stdout: tab.Intern(StandardOutput),
	}

	c.types = c.predicates()

	entries := []entry{}
	entries = append(entries, c.pairs()...)
	entries = append(entries, c.relational()...)
	entries = append(entries, c.arithmetic()...)
	entries = append(entries, c.symbols()...)
	entries = append(entries, c.core()...)
	entries = append(entries, c.vectors()...)
	entries = append(entries, c.conduits()...)

	bs := make([]*builtin.T, len(entries))
	for i, e := range entries {
		bs[i] = builtin.New(e.name, e.min, e.max, e.fn)
	}

	return bs
}

func (c *commands) bool(v bool) cell.I {
	return create.Bool(v, c.t)
}

// stream returns the stream in args at index i or, if there are not
// enough arguments, the value of the standard stream variable s.
func (c *commands) stream(label string, args []cell.I, i int, s *sym.T) (*stream.T, error) {
	if i < len(args) {
		return validate.Stream(label, args[i])
	}

	return validate.Stream(label, s.Value())
}
