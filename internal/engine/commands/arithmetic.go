// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/validate"
)

type operator struct {
	floats func(a, b float64) (float64, error)
	ints   func(a, b int64) (int64, error)
	name   string
}

func add(_ *env.T, args []cell.I) (cell.I, error) {
	if len(args) == 0 {
		return num.NewInt(0), nil
	}

	return fold(plus, args)
}

func div(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Variadic("/", args, 1)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return fold(quotient, append([]cell.I{num.NewInt(1)}, args...))
	}

	return fold(quotient, args)
}

func mod(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("%", args, 2, 2)
	if err != nil {
		return nil, err
	}

	return fold(remainder, args)
}

func mul(_ *env.T, args []cell.I) (cell.I, error) {
	if len(args) == 0 {
		return num.NewInt(1), nil
	}

	return fold(product, args)
}

func sub(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Variadic("-", args, 1)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return fold(minus, append([]cell.I{num.NewInt(0)}, args...))
	}

	return fold(minus, args)
}

// fold applies op from left to right across args. The result is an int
// if every argument is an int and a float otherwise.
func fold(op *operator, args []cell.I) (cell.I, error) {
	for _, c := range args {
		if !num.Is(c) {
			_, err := validate.Number(op.name, c)

			return nil, err
		}
	}

	integral := true
	for _, c := range args {
		integral = integral && num.IsInt(c)
	}

	if integral {
		acc := num.Int64(args[0])

		for _, c := range args[1:] {
			var err error

			acc, err = op.ints(acc, num.Int64(c))
			if err != nil {
				return nil, err
			}
		}

		return num.NewInt(acc), nil
	}

	acc := num.Float64(args[0])

	for _, c := range args[1:] {
		var err error

		acc, err = op.floats(acc, num.Float64(c))
		if err != nil {
			return nil, err
		}
	}

	return num.NewFloat(acc), nil
}

func divideByZero(name string) error {
	return fail.New(fail.Type, "%s: division by zero", name)
}

//nolint:gochecknoglobals
var (
	minus = &operator{
		floats: func(a, b float64) (float64, error) { return a - b, nil },
		ints:   func(a, b int64) (int64, error) { return a - b, nil },
		name:   "-",
	}
	plus = &operator{
		floats: func(a, b float64) (float64, error) { return a + b, nil },
		ints:   func(a, b int64) (int64, error) { return a + b, nil },
		name:   "+",
	}
	product = &operator{
		floats: func(a, b float64) (float64, error) { return a * b, nil },
		ints:   func(a, b int64) (int64, error) { return a * b, nil },
		name:   "*",
	}
	quotient = &operator{
		floats: func(a, b float64) (float64, error) { return a / b, nil },
		ints: func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, divideByZero("/")
			}

			return a / b, nil
		},
		name: "/",
	}
	remainder = &operator{
		floats: func(a, b float64) (float64, error) { return math.Mod(a, b), nil },
		ints: func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, divideByZero("%")
			}

			return a % b, nil
		},
		name: "%",
	}
)
