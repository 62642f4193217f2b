// Released under an MIT license. See LICENSE.

// Package options parses lisp's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lisp 0.1.0"

const usage = `lisp

Usage:
  lisp [-s] [CODE]
  lisp [-s] -f FILE
  lisp -h
  lisp -v

Arguments:
  CODE  Lisp code to evaluate. The value of the last form is printed.

Options:
  -f, --file=FILE  Evaluate the lisp code in FILE.
  -s, --strict     Stop at the first form that fails to parse.
                   Otherwise, forms that fail to parse are skipped.
  -h, --help       Display this help.
  -v, --version    Print lisp version.

If neither CODE nor FILE is given and lisp's stdin is a TTY, an interactive
session is started. Otherwise, lisp code is read from stdin.
`

// T (options) holds the parsed command-line arguments.
type T struct {
	Code        string
	File        string
	Interactive bool
	Strict      bool
}

// Parse parses argv, the command-line arguments without the program name.
// It exits after printing usage or the version if asked to.
func Parse(argv []string) (*T, error) {
	parser := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	return From(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())), nil
}

// From creates options from parsed docopt opts. Terminal is true if stdin is a terminal.
func From(opts docopt.Opts, terminal bool) *T {
	t := &T{}

	t.Code, _ = opts.String("CODE")
	t.File, _ = opts.String("--file")
	t.Strict, _ = opts.Bool("--strict")

	t.Interactive = t.Code == "" && t.File == "" && terminal

	return t
}
