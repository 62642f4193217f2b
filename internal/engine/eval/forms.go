// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/interface/truth"
	"github.com/Mg138/lisp/internal/common/type/boolean"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/lambda"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/sym"
)

// A form evaluates the arguments of a special form in the env e.
type form func(args list.T, e *env.T) (cell.I, error)

// Specials returns the names of the special forms.
func Specials() []string {
	return []string{
		"and", "begin", "cond", "define", "defmacro", "defun", "fn",
		"if", "lambda", "let", "or", "quote", "set", "set!",
	}
}

// Special returns true if s is the name of a special form.
func Special(s string) bool {
	return special(s) != nil
}

// special is a switch rather than a map to avoid an initialization cycle.
func special(s string) form {
	switch s {
	case "and":
		return and
	case "begin":
		return begin
	case "cond":
		return cond
	case "define":
		return define
	case "defmacro":
		return defmacro
	case "defun":
		return defun
	case "fn", "lambda":
		return closure
	case "if":
		return branch
	case "let":
		return let
	case "or":
		return or
	case "quote":
		return quote
	case "set", "set!":
		return set
	}

	return nil
}

func and(args list.T, e *env.T) (cell.I, error) {
	var result cell.I = boolean.True

	for c := range args.All() {
		v, err := Eval(c, e)
		if err != nil {
			return nil, err
		}

		if !truth.Value(v) {
			return v, nil
		}

		result = v
	}

	return result, nil
}

func begin(args list.T, e *env.T) (cell.I, error) {
	return Block(e, args.All())
}

func branch(args list.T, e *env.T) (cell.I, error) {
	v, err := shape("if", args, 2, 3)
	if err != nil {
		return nil, err
	}

	test, err := Eval(v[0], e)
	if err != nil {
		return nil, err
	}

	if truth.Value(test) {
		return Eval(v[1], e)
	}

	if len(v) == 3 {
		return Eval(v[2], e)
	}

	return list.Null, nil
}

func closure(args list.T, e *env.T) (cell.I, error) {
	params, body, err := signature("lambda", args)
	if err != nil {
		return nil, err
	}

	return lambda.New(e, params, body), nil
}

func cond(args list.T, e *env.T) (cell.I, error) {
	for clause := range args.All() {
		if !list.Is(clause) || list.IsNull(clause) {
			return nil, malformed("cond", "clause %s is not a non-empty list", literal.String(clause))
		}

		l := list.To(clause)
		head, _ := list.Car(l)

		test, err := Eval(head, e)
		if err != nil {
			return nil, err
		}

		if !truth.Value(test) {
			continue
		}

		forms := list.Cdr(l)
		if forms == list.Null {
			return test, nil
		}

		return Block(e, forms.All())
	}

	return list.Null, nil
}

func define(args list.T, e *env.T) (cell.I, error) {
	head, err := list.Car(args)
	if err != nil {
		return nil, malformed("define", "missing name")
	}

	// (define (name params...) body...) is shorthand for defun.
	if list.Is(head) && !list.IsNull(head) {
		l := list.To(head)
		name, _ := list.Car(l)

		return defun(list.Cons(name, list.Cons(list.Cdr(l), list.Cdr(args))), e)
	}

	v, err := shape("define", args, 2, 2)
	if err != nil {
		return nil, err
	}

	if !sym.Is(v[0]) {
		return nil, malformed("define", "%s is not a symbol", literal.String(v[0]))
	}

	value, err := Eval(v[1], e)
	if err != nil {
		return nil, err
	}

	e.Define(sym.To(v[0]).String(), value)

	return value, nil
}

func defmacro(args list.T, e *env.T) (cell.I, error) {
	return named("defmacro", lambda.Macro, args, e)
}

func defun(args list.T, e *env.T) (cell.I, error) {
	return named("defun", lambda.New, args, e)
}

func let(args list.T, e *env.T) (cell.I, error) {
	head, err := list.Car(args)
	if err != nil || !list.Is(head) {
		return nil, malformed("let", "expected a list of bindings")
	}

	scope := e.Child()

	for binding := range list.To(head).All() {
		v, err := assignment("let", binding)
		if err != nil {
			return nil, err
		}

		value, err := Eval(v[1], scope)
		if err != nil {
			return nil, err
		}

		scope.Define(sym.To(v[0]).String(), value)
	}

	return Block(scope, list.Cdr(args).All())
}

func or(args list.T, e *env.T) (cell.I, error) {
	for c := range args.All() {
		v, err := Eval(c, e)
		if err != nil {
			return nil, err
		}

		if truth.Value(v) {
			return v, nil
		}
	}

	return boolean.False, nil
}

func quote(args list.T, _ *env.T) (cell.I, error) {
	v, err := shape("quote", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return v[0], nil
}

func set(args list.T, e *env.T) (cell.I, error) {
	v, err := assignment("set", args)
	if err != nil {
		return nil, err
	}

	value, err := Eval(v[1], e)
	if err != nil {
		return nil, err
	}

	err = e.Set(sym.To(v[0]).String(), value)
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Helpers.

func malformed(name, format string, args ...interface{}) error {
	return fail.New(fail.Malformed, name+": "+format, args...)
}

func named(
	name string,
	create func(*env.T, []string, list.T) *lambda.T,
	args list.T,
	e *env.T,
) (cell.I, error) {
	head, err := list.Car(args)
	if err != nil || !sym.Is(head) {
		return nil, malformed(name, "expected a name")
	}

	params, body, err := signature(name, list.Cdr(args))
	if err != nil {
		return nil, err
	}

	l := create(e, params, body)

	e.Define(sym.To(head).String(), l)

	return l, nil
}

// assignment checks that c is a two element list starting with a symbol.
func assignment(name string, c cell.I) ([]cell.I, error) {
	if !list.Is(c) {
		return nil, malformed(name, "expected (symbol value), found %s", literal.String(c))
	}

	v, err := shape(name, list.To(c), 2, 2)
	if err != nil {
		return nil, err
	}

	if !sym.Is(v[0]) {
		return nil, malformed(name, "%s is not a symbol", literal.String(v[0]))
	}

	return v, nil
}

// shape checks that the special form name was passed between min and max arguments.
func shape(name string, args list.T, min, max int) ([]cell.I, error) {
	v := list.Values(args)
	if len(v) < min || len(v) > max {
		if min == max {
			return nil, malformed(name, "expected %d arguments, found %d", min, len(v))
		}

		return nil, malformed(name, "expected %d to %d arguments, found %d", min, max, len(v))
	}

	return v, nil
}

// signature splits args into a list of parameter names and the body forms.
// The body must have at least one form.
func signature(name string, args list.T) ([]string, list.T, error) {
	head, err := list.Car(args)
	if err != nil || !list.Is(head) {
		return nil, list.Null, malformed(name, "expected a parameter list")
	}

	params := []string{}

	for p := range list.To(head).All() {
		if !sym.Is(p) {
			return nil, list.Null, malformed(name, "parameter %s is not a symbol", literal.String(p))
		}

		params = append(params, sym.To(p).String())
	}

	body := list.Cdr(args)
	if list.IsNull(body) {
		return nil, list.Null, malformed(name, "expected a body")
	}

	return params, body, nil
}
