// Released under an MIT license. See LICENSE.

// Package validate provides argument checks for builtins.
package validate

import (
	"fmt"
	"strconv"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/common/type/sym"
)

// Variadic checks that at least min arguments were passed to the builtin named n.
func Variadic(n string, args []cell.I, min int) error {
	if len(args) < min {
		return fail.ArityMismatch(n, "at least "+Count(min, "argument", "s"), len(args))
	}

	return nil
}

// Fixed checks that between min and max arguments were passed to the builtin named n.
func Fixed(n string, args []cell.I, min, max int) error {
	if len(args) >= min && len(args) <= max {
		return nil
	}

	expected := Count(max, "argument", "s")
	if min != max {
		expected = fmt.Sprintf("%d to %s", min, expected)
	}

	return fail.ArityMismatch(n, expected, len(args))
}

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return strconv.Itoa(n) + " " + label + p
}

// Int returns the value of c if it is an int.
func Int(n string, c cell.I) (int64, error) {
	if !num.IsInt(c) {
		return 0, mismatch(n, "int", c)
	}

	return num.Int64(c), nil
}

// List returns c as a list if it is a list.
func List(n string, c cell.I) (list.T, error) {
	if !list.Is(c) {
		return list.Null, mismatch(n, "list", c)
	}

	return list.To(c), nil
}

// Number returns the value of c as a float64 if it is a number.
func Number(n string, c cell.I) (float64, error) {
	if !num.Is(c) {
		return 0, mismatch(n, "number", c)
	}

	return num.Float64(c), nil
}

// String returns the text of c if it is a string.
func String(n string, c cell.I) (string, error) {
	if !str.Is(c) {
		return "", mismatch(n, "string", c)
	}

	return str.To(c).String(), nil
}

// Symbol returns the name of c if it is a symbol.
func Symbol(n string, c cell.I) (string, error) {
	if !sym.Is(c) {
		return "", mismatch(n, "symbol", c)
	}

	return sym.To(c).String(), nil
}

func mismatch(n, expected string, c cell.I) error {
	return fail.New(fail.Type, "%s expected %s, passed %s", n, expected, c.Name())
}
