// Released under an MIT license. See LICENSE.

/*
Starlisp is a small, dynamically scoped Lisp. Every symbol has a single
value cell, lambda and macro expressions are ordinary lists, calls in
tail position do not grow the stack and errors can be caught by tag:

	(defun count (n) (if (= n 0) 'done (count (- n 1))))
	(count 1000000)
	(catch 'arithmetic-error (lambda (c) 0) (/ 1 0))

Starlisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/engine"
	"github.com/michaelmacinnis/starlisp/internal/system/config"
	"github.com/michaelmacinnis/starlisp/internal/system/options"
	"github.com/michaelmacinnis/starlisp/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(options.Config())
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	args := options.Args()
	if s := options.Script(); s != "" {
		args = append([]string{s}, args...)
	}

	e, err := engine.New(stdin, stdout, stderr, args...)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	for _, path := range cfg.Preload {
		_, err = e.Load(path)
		if err != nil {
			return status(err, stderr)
		}
	}

	switch {
	case options.Expression() != "":
		v, err := e.EvalString(options.Expression())
		if err != nil {
			return status(err, stderr)
		}

		fmt.Fprintln(stdout, literal.String(v))

	case options.Script() != "":
		_, err = e.Load(options.Script())
		if err != nil {
			return status(err, stderr)
		}

	case options.Interactive():
		if !options.Quiet() && !cfg.Quiet {
			fmt.Fprintln(stdout, options.Version)
		}

		return ui.Run(e, cfg, stdout, stderr)

	default:
		_, err = e.Run(e.Stdin())
		if err != nil {
			return status(err, stderr)
		}
	}

	return 0
}

func status(err error, stderr io.Writer) int {
	if n, ok := errs.IsExit(err); ok {
		return n
	}

	fmt.Fprintln(stderr, err)

	return 1
}
