// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/common/type/sym"
	"github.com/Mg138/lisp/internal/common/validate"
)

func concat(_ *env.T, args []cell.I) (cell.I, error) {
	var joined strings.Builder

	for _, c := range args {
		joined.WriteString(text(c))
	}

	return str.New(joined.String()), nil
}

func lower(_ *env.T, args []cell.I) (cell.I, error) {
	s, err := unaryString("lower", args)
	if err != nil {
		return nil, err
	}

	return str.New(strings.ToLower(s)), nil
}

func numberToString(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("number->string", args, 1, 1)
	if err != nil {
		return nil, err
	}

	if _, err := validate.Number("number->string", args[0]); err != nil {
		return nil, err
	}

	return str.New(literal.String(args[0])), nil
}

func stringLength(_ *env.T, args []cell.I) (cell.I, error) {
	s, err := unaryString("string-length", args)
	if err != nil {
		return nil, err
	}

	return num.NewInt(int64(utf8.RuneCountInString(s))), nil
}

func stringToSymbol(_ *env.T, args []cell.I) (cell.I, error) {
	s, err := unaryString("string->symbol", args)
	if err != nil {
		return nil, err
	}

	return sym.New(s), nil
}

func symbolToString(_ *env.T, args []cell.I) (cell.I, error) {
	err := validate.Fixed("symbol->string", args, 1, 1)
	if err != nil {
		return nil, err
	}

	s, err := validate.Symbol("symbol->string", args[0])
	if err != nil {
		return nil, err
	}

	return str.New(s), nil
}

func upper(_ *env.T, args []cell.I) (cell.I, error) {
	s, err := unaryString("upper", args)
	if err != nil {
		return nil, err
	}

	return str.New(strings.ToUpper(s)), nil
}

// text returns the text of c. Strings are not quoted.
func text(c cell.I) string {
	if s, ok := common.String(c); ok && (str.Is(c) || sym.Is(c)) {
		return s
	}

	return literal.String(c)
}

func unaryString(name string, args []cell.I) (string, error) {
	err := validate.Fixed(name, args, 1, 1)
	if err != nil {
		return "", err
	}

	return validate.String(name, args[0])
}
