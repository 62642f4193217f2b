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

func appendInPlace(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Variadic("append!", args, 1)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("append!", args[0])
	if err != nil {
		return nil, err
	}

	return list.Append(l, args[1:]...), nil
}

func car(_ *env.T, args []cell.I) (cell.I, error) {
	l, err := unary("car", args)
	if err != nil {
		return nil, err
	}

	return list.Car(l)
}

func cdr(_ *env.T, args []cell.I) (cell.I, error) {
	l, err := unary("cdr", args)
	if err != nil {
		return nil, err
	}

	return list.Cdr(l), nil
}

func cons(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("cons", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("cons", args[1])
	if err != nil {
		return nil, err
	}

	return list.Cons(args[0], l), nil
}

func isList(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("list?", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(list.Is(args[0])), nil
}

func isNull(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("null?", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(list.IsNull(args[0])), nil
}

func length(_ *env.T, args []cell.I) (cell.I, error) {
	l, err := unary("length", args)
	if err != nil {
		return nil, err
	}

	return num.NewInt(list.Length(l)), nil
}

func makeList(_ *env.T, args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}

func nth(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("nth", args, 2, 2)
	if err != nil {
		return nil, err
	}

	i, err := validate.Int("nth", args[0])
	if err != nil {
		return nil, err
	}

	l, err := validate.List("nth", args[1])
	if err != nil {
		return nil, err
	}

	t, err := list.Tail(l, i)
	if err != nil {
		return nil, err
	}

	return list.Car(t)
}

func reverse(_ *env.T, args []cell.I) (cell.I, error) {
	l, err := unary("reverse", args)
	if err != nil {
		return nil, err
	}

	return list.Reverse(l), nil
}

func setCar(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("set-car!", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("set-car!", args[0])
	if err != nil {
		return nil, err
	}

	return args[1], list.SetCar(l, args[1])
}

func setCdr(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("set-cdr!", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("set-cdr!", args[0])
	if err != nil {
		return nil, err
	}

	tail, err := validate.List("set-cdr!", args[1])
	if err != nil {
		return nil, err
	}

	return tail, list.SetCdr(l, tail)
}

func slice(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("slice", args, 2, 3)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("slice", args[0])
	if err != nil {
		return nil, err
	}

	start, err := validate.Int("slice", args[1])
	if err != nil {
		return nil, err
	}

	end := int64(0)
	if len(args) == 3 { //nolint:gomnd
		end, err = validate.Int("slice", args[2])
		if err != nil {
			return nil, err
		}
	}

	return list.Slice(l, start, end)
}

func unary(name string, args []cell.I) (list.T, error) {
	err := validate.Fixed(name, args, 1, 1)
	if err != nil {
		return list.Null, err
	}

	return validate.List(name, args[0])
}
