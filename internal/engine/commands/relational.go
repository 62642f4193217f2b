// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/type/boolean"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/validate"
)

// eq compares numbers by value, so (= 1 1.0) is true. Other values are
// compared with Equal.
func eq(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Variadic("=", args, 2)
	if err != nil {
		return nil, err
	}

	for _, c := range args[1:] {
		switch {
		case num.IsInt(args[0]) && num.IsInt(c):
			if num.Int64(args[0]) != num.Int64(c) {
				return boolean.False, nil
			}
		case num.Is(args[0]) && num.Is(c):
			if num.Float64(args[0]) != num.Float64(c) {
				return boolean.False, nil
			}
		case !args[0].Equal(c):
			return boolean.False, nil
		}
	}

	return boolean.True, nil
}

func ge(_ *env.T, args []cell.I) (cell.I, error) {
	return compare(">=", args, func(a, b float64) bool { return a >= b })
}

func gt(_ *env.T, args []cell.I) (cell.I, error) {
	return compare(">", args, func(a, b float64) bool { return a > b })
}

// isEq uses each value's own Equal. Lists compare only their first items.
func isEq(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("eq?", args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(args[0].Equal(args[1])), nil
}

// isEqual compares lists item by item.
func isEqual(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("equal?", args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(list.DeepEqual(args[0], args[1])), nil
}

func le(_ *env.T, args []cell.I) (cell.I, error) {
	return compare("<=", args, func(a, b float64) bool { return a <= b })
}

func lt(_ *env.T, args []cell.I) (cell.I, error) {
	return compare("<", args, func(a, b float64) bool { return a < b })
}

func compare(name string, args []cell.I, ordered func(a, b float64) bool) (cell.I, error) {
	err := validate.Variadic(name, args, 2)
	if err != nil {
		return nil, err
	}

	prev, err := validate.Number(name, args[0])
	if err != nil {
		return nil, err
	}

	for _, c := range args[1:] {
		curr, err := validate.Number(name, c)
		if err != nil {
			return nil, err
		}

		if !ordered(prev, curr) {
			return boolean.False, nil
		}

		prev = curr
	}

	return boolean.True, nil
}
