// Released under an MIT license. See LICENSE.

package engine_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/engine"
)

type session struct {
	*engine.T
	stderr *bytes.Buffer
	stdout *bytes.Buffer
	t      *testing.T
}

func start(t *testing.T, stdin string, args ...string) *session {
	t.Helper()

	s := &session{
		stderr: &bytes.Buffer{},
		stdout: &bytes.Buffer{},
		t:      t,
	}

	e, err := engine.New(strings.NewReader(stdin), s.stdout, s.stderr, args...)
	require.NoError(t, err)

	s.T = e

	return s
}

func (s *session) eval(text string) string {
	s.t.Helper()

	v, err := s.EvalString(text)
	require.NoError(s.t, err, text)

	return literal.String(v)
}

func (s *session) fail(text string) *errs.T {
	s.t.Helper()

	_, err := s.EvalString(text)
	require.Error(s.t, err, text)

	return errs.As(err)
}

func TestBootLibrary(t *testing.T) {
	s := start(t, "")

	tests := []struct {
		text     string
		expected string
	}{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list)", "nil"},
		{"(defun sq (x) (* x x)) (sq 7)", "49"},
		{"(progn 1 2 3)", "3"},
		{"(progn)", "nil"},
		{"(let ((a 1) (b 2)) (+ a b))", "3"},
		{"(cond (nil 1) ((= 1 2) 2) (t 3))", "3"},
		{"(cond (nil 1))", "nil"},
		{"(and 1 2 3)", "3"},
		{"(and 1 nil 3)", "nil"},
		{"(and)", "t"},
		{"(or nil 2 3)", "2"},
		{"(or nil nil)", "nil"},
		{"(or)", "nil"},
		{"(not nil)", "t"},
		{"(null? '(1))", "nil"},
		{"(cadr '(1 2 3))", "2"},
		{"(cddr '(1 2 3))", "(3)"},
		{"(caddr '(1 2 3))", "3"},
		{"(append '(1 2) '(3 4))", "(1 2 3 4)"},
		{"(mapcar (lambda (x) (+ x 1)) '(1 2 3))", "(2 3 4)"},
		{"(reverse '(1 2 3))", "(3 2 1)"},
		{"(nth 2 '(a b c d))", "c"},
		{"(< 1 2)", "t"},
		{"(> 1 2)", "nil"},
		{"(when t 1 2)", "2"},
		{"(unless t 1 2)", "nil"},
		{"(defmacro twice (x) (list 'progn x x)) (twice 5)", "5"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, s.eval(tt.text), tt.text)
	}
}

func TestOrEvaluatesOnce(t *testing.T) {
	s := start(t, "")

	s.eval("(set 'n 0)")
	s.eval("(defun bump () (set 'n (+ n 1)))")

	require.Equal(t, "1", s.eval("(or (bump) 99)"))
	require.Equal(t, "1", s.eval("n"))
}

func TestCatch(t *testing.T) {
	s := start(t, "")

	require.Equal(t, "0", s.eval("(catch 'arithmetic-error (lambda (c) 0) (/ 1 0))"))
	require.Equal(t, "symbol-error", s.eval("(catch t (lambda (c) (condition-tag c)) (set 1 2))"))
	require.Equal(t, `"boom"`, s.eval(`(catch 'oops (lambda (c) (condition-message c)) (throw 'oops "boom"))`))
	require.Equal(t, "42", s.eval("(catch 'oops (lambda (c) 0) 42)"))

	e := s.fail("(catch 'other (lambda (c) 0) (throw 'oops))")
	require.Equal(t, "oops", e.Tag)
	require.Equal(t, errs.User, e.Kind)

	require.Equal(t, "nil", s.eval("(ignore-errors (car 1))"))
	require.Equal(t, "2", s.eval("(ignore-errors 1 2)"))
}

func TestCatchUninternedTag(t *testing.T) {
	s := start(t, "")

	s.eval("(set 'g (gensym))")

	require.Equal(t, "caught", s.eval("(catch g (lambda (c) 'caught) (throw g))"))
	require.Equal(t, "t", s.eval(`(catch g (lambda (c) (eq? g (condition-tag c))) (throw g "m"))`))
	require.Equal(t, "outer", s.eval("(catch g (lambda (c) 'outer) (catch 'other (lambda (c) 0) (throw g)))"))

	e := s.fail("(catch (gensym) (lambda (c) 'wrong) (throw g))")
	require.Equal(t, errs.User, e.Kind)
	require.Equal(t, strings.TrimPrefix(s.eval("g"), "#:"), e.Tag)
}

func TestCatchRestoresBindings(t *testing.T) {
	s := start(t, "")

	s.eval("(set 'x 'outer)")
	require.Equal(t, "outer", s.eval("(catch t (lambda (c) x) ((lambda (x) (throw 'inner)) 'bound))"))
	require.Equal(t, "outer", s.eval("x"))
}

func TestThrowCondition(t *testing.T) {
	s := start(t, "")

	e := s.fail("(%try (lambda () (throw 'first \"m\")) (lambda (c) (throw c)))")
	require.Equal(t, "first", e.Tag)
	require.Equal(t, "m", e.Message)
}

func TestPredicates(t *testing.T) {
	s := start(t, "")

	tests := [][2]string{
		{"(eq? 'a 'a)", "t"},
		{"(eq? 1 1)", "t"},
		{"(eq? 1 1.0)", "nil"},
		{"(eq? '(1) '(1))", "nil"},
		{"(eql? 2.5 2.5)", "t"},
		{"(equal? '(1 (2)) '(1 (2)))", "t"},
		{"(equal? \"ab\" \"ab\")", "t"},
		{"(equal? #(1 2) #(1 2))", "t"},
		{"(= 1 1.0)", "t"},
		{"(atom? '(1))", "nil"},
		{"(atom? nil)", "t"},
		{"(neg? -3)", "t"},
		{"(char= #\\a #\\a)", "t"},
		{"(type? 'fixnum 1)", "t"},
		{"(type? 'bignum 1)", "nil"},
		{"(type? 'bignum (* 4294967296 4294967296))", "t"},
		{"(type? 'integer 1)", "t"},
		{"(type? 'flonum 1.5)", "t"},
		{"(type? 'number 1.5)", "t"},
		{"(type? 'symbol 'a)", "t"},
		{"(type? 'list nil)", "t"},
		{"(type? 'cons nil)", "nil"},
		{"(type? 'subr car)", "t"},
		{"(type? 'procedure car)", "t"},
		{"(type? 'procedure (lambda () 1))", "t"},
		{"(type? 'string \"s\")", "t"},
		{"(type? 'array \"s\")", "t"},
		{"(type? 'char #\\s)", "t"},
		{"(type? 'stream *standard-output*)", "t"},
		{"(type? 'condition (%try (lambda () (throw 'x)) (lambda (c) c)))", "t"},
		{"(type? 'unknown 1)", "nil"},
		{"(= (sxhash '(1 2)) (sxhash (list 1 2)))", "t"},
		{"(equal? (ash 1 70) 1180591620717411303424.0)", "t"},
		{"(= (sxhash (ash 1 70)) (sxhash 1180591620717411303424.0))", "t"},
	}

	for _, tt := range tests {
		require.Equal(t, tt[1], s.eval(tt[0]), tt[0])
	}
}

func TestArithmetic(t *testing.T) {
	s := start(t, "")

	require.Equal(t, "9223372036854775808", s.eval("(+ 9223372036854775807 1)"))
	require.Equal(t, "1.5", s.eval("(/ 3.0 2)"))
	require.Equal(t, "1", s.eval("(mod 7 3)"))
	require.Equal(t, "256", s.eval("(ash 1 8)"))

	e := s.fail("(/ 1 0)")
	require.Equal(t, errs.ArithmeticError, e.Tag)

	e = s.fail("(+ 1 'a)")
	require.Equal(t, errs.Type, e.Kind)

	e = s.fail("(+ 1)")
	require.Equal(t, errs.Arity, e.Kind)
}

func TestPairsAndSymbols(t *testing.T) {
	s := start(t, "")

	require.Equal(t, "nil", s.eval("(car nil)"))
	require.Equal(t, "(9 2)", s.eval("(rplaca (list 1 2) 9)"))
	require.Equal(t, "(1 . 9)", s.eval("(rplacd (list 1 2) 9)"))
	require.Equal(t, "3", s.eval("(length '(a b c))"))
	require.Equal(t, "0", s.eval("(length nil)"))
	require.Equal(t, "2", s.eval(`(length "ab")`))

	require.Equal(t, "t", s.eval(`(eq? (intern "abc") 'abc)`))
	require.Equal(t, "5", s.eval("(set 'v 5) (symbol-value 'v)"))
	require.Equal(t, "nil", s.eval("(symbol-value 'never-set)"))
	require.Equal(t, errs.SymbolError, s.fail("(symbol-value 1)").Tag)
	require.Equal(t, "nil", s.eval("(eq? (gensym) (gensym))"))
	require.Equal(t, "t", s.eval("(eq? (car (symbols)) (car (symbols)))"))
	require.Equal(t, "7", s.eval("(eval '(+ 3 4))"))
	require.Equal(t, "6", s.eval("(apply * '(2 3))"))
	require.Equal(t, "(2 1)", s.eval("(apply (lambda (a b) (list b a)) '(1 2))"))
	require.Equal(t, "nil", s.eval("(running-compiled?)"))
	require.Equal(t, "t", s.eval("(type? 'fixnum (get-time))"))
}

func TestArraysAndStrings(t *testing.T) {
	s := start(t, "")

	require.Equal(t, "#(nil nil)", s.eval("(make-array 2)"))
	require.Equal(t, "#(1 2)", s.eval("(make-array '(1 2))"))
	require.Equal(t, `"xxx"`, s.eval(`(make-string 3 #\x)`))
	require.Equal(t, "b", s.eval("(aref #(a b) 1)"))
	require.Equal(t, `#\b`, s.eval(`(aref "ab" 1)`))
	require.Equal(t, "a", s.eval("(aset (set 'arr (make-array '(a b))) 0 'z)"))
	require.Equal(t, "#(z b)", s.eval("arr"))
	require.Equal(t, "97", s.eval(`(char->integer #\a)`))
	require.Equal(t, `#\a`, s.eval("(integer->char 97)"))
	require.Equal(t, `"é\n"`, s.eval(`"é\n"`))

	e := s.fail("(aref #(a) 1)")
	require.Equal(t, errs.Range, e.Kind)

	e = s.fail(`(aset "ab" 0 'x)`)
	require.Equal(t, errs.Type, e.Kind)
}

func TestStreams(t *testing.T) {
	s := start(t, "(a b) c")

	s.eval(`(prin1 "q") (princ "p") (write-char #\!) (terpri) (prin1 'x *standard-error*)`)
	require.Equal(t, "\"q\"p!\n", s.stdout.String())
	require.Equal(t, "x", s.stderr.String())

	require.Equal(t, "(a b)", s.eval("(read)"))
	require.Equal(t, "#\\ ", s.eval("(read-char)"))
	require.Equal(t, "c", s.eval("(read)"))
	require.Equal(t, errs.EOFError, s.fail("(read)").Tag)

	require.Equal(t, "(1 2)", s.eval(`(read (make-string-input-stream "(1 2)"))`))
	require.Equal(t, `"(1 . 2)"`, s.eval(`
		(set 'sink (make-string-output-stream))
		(prin1 (cons 1 2) sink)
		(get-output-stream-string sink)`))
	require.Equal(t, `""`, s.eval("(get-output-stream-string sink)"))

	require.Equal(t, "t", s.eval(`(eof? (make-string-input-stream ""))`))
	require.Equal(t, "nil", s.eval(`(eof? (make-string-input-stream "x"))`))
}

func TestFiles(t *testing.T) {
	s := start(t, "")

	path := filepath.Join(t.TempDir(), "data.lisp")
	s.eval(`(set 'path "` + path + `")`)

	s.eval(`(set 'f (open path 'out)) (prin1 '(1 "two" #\3) f) (close f)`)
	require.Equal(t, "nil", s.eval("(close f)"))

	require.Equal(t, `(1 "two" #\3)`, s.eval(`(set 'f (open path 'in)) (read f)`))
	require.Equal(t, "t", s.eval("(eof? f)"))
	require.Equal(t, "t", s.eval("(close f)"))

	require.Equal(t, errs.IOError, s.fail(`(open "/nonexistent/dir/file" 'in)`).Tag)
	require.Equal(t, errs.Type, s.fail(`(open path 'sideways)`).Kind)
}

func TestLoadSkipsByteOrderMark(t *testing.T) {
	s := start(t, "")

	path := filepath.Join(t.TempDir(), "bom.lisp")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf(set 'loaded 'yes)"), 0o600))

	_, err := s.Load(path)
	require.NoError(t, err)
	require.Equal(t, "yes", s.eval("loaded"))
}

func TestCommandLineArgs(t *testing.T) {
	s := start(t, "", "script.lisp", "a")

	require.Equal(t, `("script.lisp" "a")`, s.eval(engine.CommandLineArgs))
}

func TestExit(t *testing.T) {
	s := start(t, "")

	_, err := s.EvalString("(exit 3)")
	n, ok := errs.IsExit(err)
	require.True(t, ok)
	require.Equal(t, 3, n)

	_, err = s.EvalString("(ignore-errors (exit 4))")
	n, ok = errs.IsExit(err)
	require.True(t, ok)
	require.Equal(t, 4, n)
}
