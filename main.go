/*
Lisp is a small Lisp interpreter.

	lisp '(define x 5) (+ x 3)'
	lisp -f script.lisp
	echo '(println "hello")' | lisp
	lisp

Given code, lisp evaluates it and prints the value of the last form. Given a
file, or input that is not a terminal, lisp evaluates it without printing.
Otherwise, lisp starts an interactive session.

Released under an MIT license. See LICENSE.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/engine"
	"github.com/Mg138/lisp/internal/system/options"
	"github.com/Mg138/lisp/internal/ui"
)

func main() {
	opts, err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(opts, os.Stdin, os.Stdout, os.Stderr))
}

func run(opts *options.T, stdin io.Reader, stdout, stderr io.Writer) int {
	e, err := engine.New(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	policy := engine.SkipParseErrors
	if opts.Strict {
		policy = engine.StopOnParseError
	}

	switch {
	case opts.Code != "":
		var v cell.I

		v, err = e.Source("command", opts.Code, policy)
		if err == nil {
			fmt.Fprintln(stdout, literal.String(v))
		}
	case opts.File != "":
		text, rerr := os.ReadFile(opts.File)
		if rerr != nil {
			err = rerr

			break
		}

		_, err = e.Source(opts.File, string(text), policy)
	case opts.Interactive:
		err = ui.Run(e)
	default:
		text, rerr := io.ReadAll(stdin)
		if rerr != nil {
			err = rerr

			break
		}

		_, err = e.Source("stdin", string(text), policy)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	return 0
}
