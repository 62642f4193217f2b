// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lisp source text.
package engine

import (
	"fmt"
	"io"
	"iter"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/engine/boot"
	"github.com/Mg138/lisp/internal/engine/commands"
	"github.com/Mg138/lisp/internal/engine/eval"
	"github.com/Mg138/lisp/internal/reader"
)

// Policy decides what happens to forms that fail to parse.
type Policy int

// Parse error policies.
const (
	// SkipParseErrors drops forms that fail to parse and evaluates the rest.
	SkipParseErrors Policy = iota

	// StopOnParseError stops at the first form that fails to parse and
	// returns its error. Forms before it are still evaluated.
	StopOnParseError
)

// T (engine) is a facade in front of the machinery for evaluating lisp code.
type T struct {
	root *env.T
}

// Default creates a new root env with every builtin defined and the boot
// script evaluated. Each call returns an independent env.
func Default(w io.Writer) (*env.T, error) {
	e := env.New(nil)

	commands.Define(e, w)

	t := &T{root: e}

	_, err := t.Source("boot", boot.Script(), StopOnParseError)
	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}

	return e, nil
}

// New creates a new engine with a default env. Output is written to w.
func New(w io.Writer) (*T, error) {
	e, err := Default(w)
	if err != nil {
		return nil, err
	}

	return &T{root: e}, nil
}

// With creates a new engine that evaluates in the env e.
func With(e *env.T) *T {
	return &T{root: e}
}

// Env returns the engine's root env.
func (t *T) Env() *env.T {
	return t.root
}

// Evaluate evaluates the form c in the root env.
func (t *T) Evaluate(c cell.I) (v cell.I, err error) {
	defer recovered(&err)

	return eval.Eval(c, t.root)
}

// Block evaluates forms in order in the root env and returns the value of
// the last form or the first error.
func (t *T) Block(forms iter.Seq[cell.I]) (v cell.I, err error) {
	defer recovered(&err)

	return eval.Block(t.root, forms)
}

// Names returns every name bound in the root env and every special form name.
func (t *T) Names() []string {
	return append(t.root.Names(), eval.Specials()...)
}

// Source parses and evaluates text in the root env. Name labels the text in
// error messages. Forms that fail to parse are handled according to p.
func (t *T) Source(name, text string, p Policy) (cell.I, error) {
	var perr error

	forms := func(yield func(cell.I) bool) {
		for c, err := range reader.Parse(name, text) {
			if err != nil {
				if p == SkipParseErrors {
					continue
				}

				perr = err

				return
			}

			if !yield(c) {
				return
			}
		}
	}

	v, err := t.Block(forms)
	if err != nil {
		return nil, err
	}

	if perr != nil {
		return nil, perr
	}

	return v, nil
}

// Panics raised by builtins, for example by a Go runtime error, are turned
// into errors so that one bad form does not take down the whole session.
func recovered(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = fail.New(fail.Type, "%v", r)
}
