// Released under an MIT license. See LICENSE.

package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/table"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/engine/commands"
	"github.com/michaelmacinnis/starlisp/internal/engine/task"
	"github.com/michaelmacinnis/starlisp/internal/reader"
)

func fresh() *task.T {
	tab := table.New()
	t := task.New(tab)

	for _, b := range commands.Builtins(t) {
		tab.Intern(b.Label()).Set(b)
	}

	s := tab.Intern("t")
	s.Set(s)

	return t
}

func run(t *testing.T, e *task.T, text string) (cell.I, error) {
	t.Helper()

	r := reader.New(e.Table(), stream.FromString(text))

	var v cell.I

	for {
		c, err := r.Read()
		if errs.Is(err, errs.EOF) {
			return v, nil
		}

		require.NoError(t, err, text)

		v, err = e.Eval(c)
		if err != nil {
			return nil, err
		}
	}
}

func eval(t *testing.T, e *task.T, text string) string {
	t.Helper()

	v, err := run(t, e, text)
	require.NoError(t, err, text)

	return literal.String(v)
}

func TestSelfEvaluating(t *testing.T) {
	e := fresh()

	for _, text := range []string{"1", "2.5", `"s"`, `#\c`, "#(1 2)", "nil"} {
		require.Equal(t, text, eval(t, e, text))
	}

	require.Equal(t, "t", eval(t, e, "t"))
	require.Equal(t, "(lambda (x) x)", eval(t, e, "(lambda (x) x)"))
	require.Equal(t, "(macro (x) x)", eval(t, e, "(macro (x) x)"))
}

func TestQuote(t *testing.T) {
	e := fresh()

	require.Equal(t, "x", eval(t, e, "'x"))
	require.Equal(t, "(a (b))", eval(t, e, "(quote (a (b)))"))
}

func TestIf(t *testing.T) {
	e := fresh()

	require.Equal(t, "2", eval(t, e, "(if nil 1 2)"))
	require.Equal(t, "2", eval(t, e, "(if 1 2)"))
	require.Equal(t, "nil", eval(t, e, "(if nil 1)"))
	require.Equal(t, "1", eval(t, e, "(if '() 2 1)"))

	for _, text := range []string{"(if 1 2 3 4)", "(if)", "(if 1)", "(if 1 . 2)"} {
		_, err := run(t, e, text)
		require.True(t, errs.Is(err, errs.Syntax), text)
		require.Equal(t, errs.InternalError, errs.As(err).Tag)
	}
}

func TestUnboundSymbolIsNil(t *testing.T) {
	e := fresh()

	require.Equal(t, "nil", eval(t, e, "undefined-thing"))
	require.Equal(t, "2", eval(t, e, "(if undefined-thing 1 2)"))

	// Unwinding a binding leaves the cell unbound again.
	require.Equal(t, "1", eval(t, e, "((lambda (fresh-name) fresh-name) 1)"))
	require.Equal(t, "nil", eval(t, e, "fresh-name"))
}

func TestLambdaParameters(t *testing.T) {
	e := fresh()

	require.Equal(t, "(2 3)", eval(t, e, "((lambda (a . b) b) 1 2 3)"))
	require.Equal(t, "1", eval(t, e, "((lambda (a . b) a) 1 2 3)"))
	require.Equal(t, "nil", eval(t, e, "((lambda (a . b) b) 1)"))
	require.Equal(t, "(1 2)", eval(t, e, "((lambda args args) 1 2)"))
	require.Equal(t, "nil", eval(t, e, "((lambda ()))"))
	require.Equal(t, "3", eval(t, e, "((lambda (a b) a b) 2 3)"))

	for _, text := range []string{
		"((lambda (a b) a) 1)",
		"((lambda (a b) a) 1 2 3)",
		"((lambda () 1) 1)",
		"((lambda (a . b) a))",
	} {
		_, err := run(t, e, text)
		require.True(t, errs.Is(err, errs.Arity), text)
	}

	_, err := run(t, e, "((lambda (1) 1) 1)")
	require.True(t, errs.Is(err, errs.Unbound))
}

func TestArgumentsAreEvaluatedBeforeBinding(t *testing.T) {
	e := fresh()

	eval(t, e, "(set 'a 10)")
	require.Equal(t, "(1 10)", eval(t, e, "((lambda (a b) (cons a (cons b nil))) 1 a)"))
}

func TestDynamicScope(t *testing.T) {
	e := fresh()

	eval(t, e, "(set 'y 1)")
	eval(t, e, "(set 'f (lambda () y))")

	require.Equal(t, "7", eval(t, e, "((lambda (y) (f)) 7)"))
	require.Equal(t, "1", eval(t, e, "(f)"))
}

func TestTailCallsDoNotGrow(t *testing.T) {
	e := fresh()

	eval(t, e, "(set 'loop (lambda (n) (if (= n 0) 'done (loop (- n 1)))))")

	require.Equal(t, "done", eval(t, e, "(loop 1000000)"))
	require.Equal(t, 0, e.Frame().Len())
	require.Equal(t, 0, e.Depth())
}

func TestMacro(t *testing.T) {
	e := fresh()

	eval(t, e, "(set 'quote-rest (macro (form) (cons 'quote (cons (cdr form) nil))))")
	require.Equal(t, "(1 2)", eval(t, e, "(quote-rest 1 2)"))

	// The expansion is evaluated in place of the call.
	eval(t, e, "(set 'swap (macro (form) (cons (car (cdr (cdr form))) (cons (car (cdr form)) nil))))")
	require.Equal(t, "(1 . 2)", eval(t, e, "(swap 2 (lambda (x) (cons 1 x)))"))
}

func TestErrors(t *testing.T) {
	e := fresh()

	_, err := run(t, e, "(1 2)")
	require.True(t, errs.Is(err, errs.NotApplicable))

	_, err = run(t, e, "(car 1)")
	require.True(t, errs.Is(err, errs.Type))

	_, err = run(t, e, "(quote . x)")
	require.True(t, errs.Is(err, errs.Syntax))
}

func TestBuiltinArityLeavesStackUntouched(t *testing.T) {
	e := fresh()

	before := e.Frame().Len()

	for _, text := range []string{"(cons 1)", "(cons 1 2 3)"} {
		_, err := run(t, e, text)
		require.True(t, errs.Is(err, errs.Arity), text)
		require.Equal(t, before, e.Frame().Len())
		require.Equal(t, 0, e.Frame().Depth())
		require.Equal(t, 0, e.Depth())
	}
}

func TestBindingsRestoredOnError(t *testing.T) {
	e := fresh()

	eval(t, e, "(set 'x 1)")

	_, err := run(t, e, "((lambda (x) (car x)) 5)")
	require.Error(t, err)
	require.Equal(t, "1", eval(t, e, "x"))

	_, err = run(t, e, "((lambda (x) ((lambda (x) (cons)) 3)) 2)")
	require.Error(t, err)
	require.Equal(t, "1", eval(t, e, "x"))
	require.Equal(t, 0, e.Frame().Len())
}

func TestDepthLimit(t *testing.T) {
	e := fresh()
	e.SetLimit(50)

	eval(t, e, "(set 'r (lambda (n) (if (= n 0) 0 (+ 1 (r (- n 1))))))")
	require.Equal(t, "10", eval(t, e, "(r 10)"))

	_, err := run(t, e, "(r 100)")
	require.True(t, errs.Is(err, errs.Internal))
	require.Equal(t, 0, e.Depth())
	require.Equal(t, 0, e.Frame().Len())
}

func TestApply(t *testing.T) {
	e := fresh()

	sum, err := run(t, e, "+")
	require.NoError(t, err)

	v, err := e.Apply(sum, []cell.I{num.Fixnum(1), num.Fixnum(2)})
	require.NoError(t, err)
	require.Equal(t, num.Fixnum(3), v)

	id, err := run(t, e, "(lambda (x) x)")
	require.NoError(t, err)

	sym := e.Table().Intern("unevaluated")

	v, err = e.Apply(id, []cell.I{sym})
	require.NoError(t, err)
	require.Same(t, sym, v)
}
