// Released under an MIT license. See LICENSE.

// Package eval provides the lisp evaluator.
//
// Evaluation is synchronous and recursive. No lock is held across a
// recursive call: each env lookup, define, or cell read is atomic on its
// own but a sequence of them is not, so a concurrent evaluation sharing an
// env may observe intermediate states.
package eval

import (
	"iter"
	"strings"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/builtin"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/lambda"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/sym"
	"github.com/Mg138/lisp/internal/common/validate"
)

// Eval evaluates c in the env e.
func Eval(c cell.I, e *env.T) (cell.I, error) {
	switch t := c.(type) {
	case *sym.T:
		return e.Lookup(t.String())
	case list.T:
		return evalList(t, e)
	}

	// Everything else evaluates to itself.
	return c, nil
}

// Apply calls the procedure fn with the already evaluated arguments args.
// The env e is the caller's env. Closures ignore it and run in a child of
// the env they captured.
func Apply(fn cell.I, args []cell.I, e *env.T) (cell.I, error) {
	switch t := fn.(type) {
	case *builtin.T:
		return t.Call(e, args)
	case *lambda.T:
		if t.IsMacro() {
			break
		}

		scope, err := bind(t, args)
		if err != nil {
			return nil, err
		}

		return Block(scope, t.Body().All())
	}

	return nil, notCallable(fn)
}

// Block evaluates each of the forms in order in the env e and returns the
// value of the last form. The value of an empty block is the empty list.
// Evaluation stops at the first error.
func Block(e *env.T, forms iter.Seq[cell.I]) (cell.I, error) {
	var result cell.I = list.Null

	for c := range forms {
		v, err := Eval(c, e)
		if err != nil {
			return nil, err
		}

		result = v
	}

	return result, nil
}

func bind(l *lambda.T, args []cell.I) (*env.T, error) {
	params := l.Params()
	if len(args) != len(params) {
		return nil, fail.ArityMismatch(
			l.Name()+" ("+strings.Join(params, " ")+")",
			validate.Count(len(params), "argument", "s"),
			len(args),
		)
	}

	scope := l.Scope().Child()
	scope.Bind(params, args)

	return scope, nil
}

func evalList(l list.T, e *env.T) (cell.I, error) {
	head, err := list.Car(l)
	if err != nil {
		return nil, fail.New(fail.EmptyList, "cannot apply nil")
	}

	if s, ok := head.(*sym.T); ok {
		if f := special(s.String()); f != nil {
			return f(list.Cdr(l), e)
		}
	}

	fn, err := Eval(head, e)
	if err != nil {
		return nil, err
	}

	if m, ok := fn.(*lambda.T); ok && m.IsMacro() {
		return expand(m, list.Cdr(l), e)
	}

	args := []cell.I{}

	for c := range list.Cdr(l).All() {
		v, err := Eval(c, e)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	return Apply(fn, args, e)
}

func expand(m *lambda.T, args list.T, e *env.T) (cell.I, error) {
	scope, err := bind(m, list.Values(args))
	if err != nil {
		return nil, err
	}

	expansion, err := Block(scope, m.Body().All())
	if err != nil {
		return nil, err
	}

	return Eval(expansion, e)
}

func notCallable(c cell.I) error {
	return fail.New(fail.NotCallable, "%s (%s) cannot be applied", literal.String(c), c.Name())
}
