// Released under an MIT license. See LICENSE.

// Package engine provides a facade in front of the starlisp reader and
// evaluator.
package engine

import (
	"io"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/conduit"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/table"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/engine/boot"
	"github.com/michaelmacinnis/starlisp/internal/engine/commands"
	"github.com/michaelmacinnis/starlisp/internal/engine/task"
	"github.com/michaelmacinnis/starlisp/internal/reader"
)

// CommandLineArgs is the variable holding the script's arguments.
const CommandLineArgs = "*command-line-args*"

// T (engine) owns a symbol table and an evaluator.
type T struct {
	stderr *stream.T
	stdin  *stream.T
	stdout *stream.T
	table  *table.T
	task   *task.T
}

type engine = T

// New creates an engine with its own symbol table, binds the builtins and
// the standard streams and evaluates the boot script. An error here means
// the engine is unusable.
func New(stdin io.Reader, stdout, stderr io.Writer, args ...string) (*engine, error) {
	tab := table.New()

	e := &engine{
		stderr: stream.New("stderr", nil, stderr),
		stdin:  stream.New("stdin", stdin, nil),
		stdout: stream.New("stdout", nil, stdout),
		table:  tab,
		task:   task.New(tab),
	}

	for _, b := range commands.Builtins(e.task) {
		tab.Intern(b.Label()).Set(b)
	}

	t := tab.Intern("t")
	t.Set(t)

	tab.Intern(commands.StandardError).Set(e.stderr)
	tab.Intern(commands.StandardInput).Set(e.stdin)
	tab.Intern(commands.StandardOutput).Set(e.stdout)

	cs := make([]cell.I, len(args))
	for i, a := range args {
		cs[i] = str.New(a)
	}

	tab.Intern(CommandLineArgs).Set(list.New(cs...))

	_, err := e.Run(stream.FromString(boot.Script()))
	if err != nil {
		return nil, errs.Wrap(errs.Internal, err, "bootstrap failed")
	}

	return e, nil
}

// Eval evaluates c.
func (e *engine) Eval(c cell.I) (cell.I, error) {
	return e.task.Eval(c)
}

// EvalString reads and evaluates every expression in s and returns the
// value of the last one.
func (e *engine) EvalString(s string) (cell.I, error) {
	return e.Run(stream.FromString(s))
}

// Load reads and evaluates every expression in the file at path.
func (e *engine) Load(path string) (cell.I, error) {
	s, err := stream.Open(path, stream.In)
	if err != nil {
		return nil, err
	}

	defer s.Close()

	return e.Run(s)
}

// Reader returns a reader for src that interns symbols in the engine's
// symbol table.
func (e *engine) Reader(src conduit.Source) *reader.T {
	return reader.New(e.table, src)
}

// Run reads and evaluates expressions from src until it is exhausted and
// returns the value of the last one.
func (e *engine) Run(src conduit.Source) (cell.I, error) {
	r := e.Reader(src)

	var v cell.I = pair.Null

	for {
		c, err := r.Read()
		if errs.Is(err, errs.EOF) {
			return v, nil
		} else if err != nil {
			return nil, err
		}

		v, err = e.task.Eval(c)
		if err != nil {
			return nil, err
		}
	}
}

// Stdin returns the engine's standard input stream.
func (e *engine) Stdin() *stream.T {
	return e.stdin
}

// Stdout returns the engine's standard output stream.
func (e *engine) Stdout() *stream.T {
	return e.stdout
}

// Table returns the engine's symbol table.
func (e *engine) Table() *table.T {
	return e.table
}

// Task returns the engine's evaluator.
func (e *engine) Task() *task.T {
	return e.task
}
