// Released under an MIT license. See LICENSE.

// Package commands provides lisp's builtin procedures.
package commands

import (
	"io"

	"github.com/Mg138/lisp/internal/common/type/builtin"
	"github.com/Mg138/lisp/internal/common/type/env"
)

// Builtins returns a mapping of names to builtin procedures.
func Builtins() map[string]builtin.Func {
	return map[string]builtin.Func{
		"%":              mod,
		"*":              mul,
		"+":              add,
		"-":              sub,
		"/":              div,
		"<":              lt,
		"<=":             le,
		"=":              eq,
		">":              gt,
		">=":             ge,
		"append!":        appendInPlace,
		"apply":          apply,
		"car":            car,
		"cdr":            cdr,
		"concat":         concat,
		"cons":           cons,
		"eq?":            isEq,
		"equal?":         isEqual,
		"error":          raise,
		"eval":           evaluate,
		"filter":         filter,
		"length":         length,
		"list":           makeList,
		"list?":          isList,
		"lower":          lower,
		"map":            mapList,
		"match":          match,
		"not":            not,
		"nth":            nth,
		"null?":          isNull,
		"number->string": numberToString,
		"reduce":         reduce,
		"reverse":        reverse,
		"set-car!":       setCar,
		"set-cdr!":       setCdr,
		"slice":          slice,
		"string->symbol": stringToSymbol,
		"string-length":  stringLength,
		"symbol->string": symbolToString,
		"type-of":        typeOf,
		"upper":          upper,
	}
}

// Define binds every builtin in the env e. Output is written to w.
func Define(e *env.T, w io.Writer) {
	for k, fn := range Builtins() {
		e.Define(k, builtin.New(k, fn))
	}

	for k, fn := range Output(w) {
		e.Define(k, builtin.New(k, fn))
	}
}
