// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/truth"
	"github.com/Mg138/lisp/internal/common/type/boolean"
	"github.com/Mg138/lisp/internal/common/type/builtin"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/sym"
	"github.com/Mg138/lisp/internal/common/validate"
	"github.com/Mg138/lisp/internal/engine/eval"
)

func evaluate(e *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("eval", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return eval.Eval(args[0], e)
}

func match(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("match", args, 2, 2)
	if err != nil {
		return nil, err
	}

	pattern, err := validate.String("match", args[0])
	if err != nil {
		return nil, err
	}

	s, err := validate.String("match", args[1])
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return nil, fail.Wrap(fail.Type, err, "match: %s", err.Error())
	}

	return boolean.Bool(ok), nil
}

func not(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("not", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(!truth.Value(args[0])), nil
}

func raise(_ *env.T, args []cell.I) (cell.I, error) {
	s := make([]string, len(args))
	for i, c := range args {
		s[i] = text(c)
	}

	return nil, fail.New(fail.User, "%s", strings.Join(s, " "))
}

func typeOf(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("type-of", args, 1, 1)
	if err != nil {
		return nil, err
	}

	if list.IsNull(args[0]) {
		return sym.New("nil"), nil
	}

	return sym.New(args[0].Name()), nil
}

// Output returns the builtins that write to w.
func Output(w io.Writer) map[string]builtin.Func {
	write := func(name, end string) builtin.Func {
		return func(_ *env.T, args []cell.I) (cell.I, error) {
			s := make([]string, len(args))
			for i, c := range args {
				s[i] = text(c)
			}

			_, err := fmt.Fprint(w, strings.Join(s, " ")+end)
			if err != nil {
				return nil, fail.Wrap(fail.Type, err, "%s: %s", name, err.Error())
			}

			if len(args) == 0 {
				return list.Null, nil
			}

			return args[len(args)-1], nil
		}
	}

	return map[string]builtin.Func{
		"print":   write("print", ""),
		"println": write("println", "\n"),
	}
}
