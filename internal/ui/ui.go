// Released under an MIT license. See LICENSE.

// Package ui provides the interactive top level for starlisp.
package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/conduit"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/engine"
	"github.com/michaelmacinnis/starlisp/internal/system/config"
	"github.com/michaelmacinnis/starlisp/internal/system/history"
)

// Continuation is the prompt shown while an expression is incomplete.
const Continuation = "... "

// Source is a character source that can begin a fresh expression.
type Source interface {
	conduit.Source

	// Fresh discards any pushed back characters and, if the current line
	// is exhausted, arranges for the next prompt to be the primary one.
	Fresh()

	// Discard drops the remainder of the current line.
	Discard()
}

// Run reads expressions with line editing, evaluates them and prints
// the results until end of input. It returns the exit status.
func Run(e *engine.T, cfg *config.T, stdout, stderr io.Writer) int {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	err := history.Load(cfg.History, cli.ReadHistory)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	status := Loop(e, &lines{cli: cli, prompt: cfg.Prompt}, stdout, stderr)

	err = history.Save(cfg.History, cli.WriteHistory)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	return status
}

// Loop is the read, evaluate, print loop. Errors are reported on stderr
// and the loop continues.
func Loop(e *engine.T, src Source, stdout, stderr io.Writer) int {
	r := e.Reader(src)

	for {
		src.Fresh()

		c, err := r.Read()
		if errors.Is(err, liner.ErrPromptAborted) {
			src.Discard()

			continue
		} else if errs.Is(err, errs.EOF) {
			fmt.Fprintln(stdout)

			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			src.Discard()

			continue
		}

		v, err := e.Eval(c)
		if status, ok := errs.IsExit(err); ok {
			return status
		} else if err != nil {
			fmt.Fprintln(stderr, err)

			continue
		}

		fmt.Fprintln(stdout, literal.String(v))
	}
}

type lines struct {
	back   []rune
	buf    []rune
	cli    *liner.State
	done   bool
	fresh  bool
	prompt string
}

func (l *lines) Back(r rune) {
	l.back = append(l.back, r)
}

func (l *lines) Discard() {
	l.back = nil
	l.buf = nil
}

func (l *lines) Fresh() {
	if len(l.buf) == 0 {
		l.back = nil
		l.fresh = true
	}
}

func (l *lines) Next() (rune, error) {
	if n := len(l.back); n > 0 {
		r := l.back[n-1]
		l.back = l.back[:n-1]

		return r, nil
	}

	for len(l.buf) == 0 {
		if l.done {
			return 0, io.EOF
		}

		p := Continuation
		if l.fresh {
			p = l.prompt
		}

		line, err := l.cli.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return 0, err
		} else if err != nil {
			l.done = true

			return 0, io.EOF
		}

		l.fresh = false

		if line != "" {
			l.cli.AppendHistory(line)
		}

		l.buf = []rune(line + "\n")
	}

	r := l.buf[0]
	l.buf = l.buf[1:]

	return r, nil
}
