// Released under an MIT license. See LICENSE.

// Package options parses starlisp's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "starlisp 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	config      string
	expression  string
	interactive bool
	quiet       bool
	script      string
	usage       = `starlisp

Usage:
  starlisp [-q] [-C FILE] SCRIPT [ARGUMENTS...]
  starlisp [-q] [-C FILE] -e EXPRESSION [ARGUMENTS...]
  starlisp [-iq] [-C FILE]
  starlisp -h
  starlisp -v

Arguments:
  ARGUMENTS  Bound, as strings, to *command-line-args*.
  SCRIPT     Path to a starlisp script.

Options:
  -C, --config=FILE          Read configuration from FILE.
  -e, --eval=EXPRESSION      Evaluate EXPRESSION and exit.
  -i, --interactive          Invert interactive mode.
  -q, --quiet                Do not print the banner.
  -h, --help                 Display this help.
  -v, --version              Print starlisp version.

If starlisp's stdin is a TTY and no script or expression was given,
expressions are read interactively. Otherwise, stdin is evaluated as a
script.
`
)

// Args returns the arguments following the script or expression.
func Args() []string {
	return args
}

// Config returns the configuration file named with -C, if any.
func Config() string {
	return config
}

// Expression returns the expression given with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if expressions should be read interactively.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	apply(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Quiet returns true if the banner should be suppressed.
func Quiet() bool {
	return quiet
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

func apply(opts docopt.Opts, terminal bool) {
	config, _ = opts.String("--config")
	expression, _ = opts.String("--eval")
	script, _ = opts.String("SCRIPT")
	quiet, _ = opts.Bool("--quiet")

	interactive = script == "" && expression == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	args, _ = opts["ARGUMENTS"].([]string)
}
