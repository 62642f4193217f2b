// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/truth"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/validate"
	"github.com/Mg138/lisp/internal/engine/eval"
)

func apply(e *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("apply", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("apply", args[1])
	if err != nil {
		return nil, err
	}

	return eval.Apply(args[0], list.Values(l), e)
}

func filter(e *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("filter", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("filter", args[1])
	if err != nil {
		return nil, err
	}

	kept := []cell.I{}

	for c := range l.All() {
		v, err := eval.Apply(args[0], []cell.I{c}, e)
		if err != nil {
			return nil, err
		}

		if truth.Value(v) {
			kept = append(kept, c)
		}
	}

	return list.New(kept...), nil
}

func mapList(e *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("map", args, 2, 2)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("map", args[1])
	if err != nil {
		return nil, err
	}

	mapped := []cell.I{}

	for c := range l.All() {
		v, err := eval.Apply(args[0], []cell.I{c}, e)
		if err != nil {
			return nil, err
		}

		mapped = append(mapped, v)
	}

	return list.New(mapped...), nil
}

// reduce folds the list from the left: (reduce f init l).
func reduce(e *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("reduce", args, 3, 3)
	if err != nil {
		return nil, err
	}

	l, err := validate.List("reduce", args[2])
	if err != nil {
		return nil, err
	}

	acc := args[1]

	for c := range l.All() {
		acc, err = eval.Apply(args[0], []cell.I{acc, c}, e)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
