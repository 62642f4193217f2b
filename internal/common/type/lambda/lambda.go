// Released under an MIT license. See LICENSE.

// Package lambda provides lisp's closure type.
package lambda

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/list"
)

const (
	lambdaName = "lambda"
	macroName  = "macro"
)

// T (lambda) is a closure: a body, its parameters, and the env it was created in.
// The body is the list of forms evaluated, in order, when the closure is applied.
// The env is shared with its creator, not copied.
type T struct {
	body   list.T
	macro  bool
	params []string
	scope  *env.T
}

type lambda = T

// New creates a closure over scope.
func New(scope *env.T, params []string, body list.T) *lambda {
	return &lambda{
		body:   body,
		params: params,
		scope:  scope,
	}
}

// Macro creates a macro over scope. A macro's arguments are not evaluated
// and its result is evaluated in the env where it was applied.
func Macro(scope *env.T, params []string, body list.T) *lambda {
	l := New(scope, params, body)
	l.macro = true

	return l
}

// Body returns the unevaluated body forms of the closure l.
func (l *lambda) Body() list.T {
	return l.body
}

// Equal returns true if c is a closure over the same env as l, with the
// same parameters and an equal body. Closures over different envs are
// never equal, even if those envs have the same contents.
func (l *lambda) Equal(c cell.I) bool {
	o, ok := c.(*lambda)
	if !ok {
		return false
	}

	if l == o {
		return true
	}

	if l.scope != o.scope || l.macro != o.macro || len(l.params) != len(o.params) {
		return false
	}

	for i, p := range l.params {
		if p != o.params[i] {
			return false
		}
	}

	return l.body.Equal(o.body)
}

// Hash returns a hash value consistent with Equal.
func (l *lambda) Hash() uint64 {
	scope := strconv.FormatUint(uint64(reflect.ValueOf(l.scope).Pointer()), 16)

	return common.Mix(
		common.Hash(l.Name(), scope),
		common.Hash("params", strings.Join(l.params, " ")),
		l.body.Hash(),
	)
}

// IsMacro returns true if l is a macro.
func (l *lambda) IsMacro() bool {
	return l.macro
}

// Literal returns the parameter list followed by the body forms of l.
func (l *lambda) Literal() string {
	body := l.body.Literal()
	if strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")") {
		body = body[1 : len(body)-1]
	}

	return "(" + strings.Join(l.params, " ") + ") " + body
}

// Name returns the type name for the closure l.
func (l *lambda) Name() string {
	if l.macro {
		return macroName
	}

	return lambdaName
}

// Params returns the parameter names of the closure l.
func (l *lambda) Params() []string {
	return l.params
}

// Scope returns the env captured by the closure l.
func (l *lambda) Scope() *env.T {
	return l.scope
}

// String returns the text of the closure l.
func (l *lambda) String() string {
	return l.Literal()
}

// Functions specific to lambda.

// Is returns true if c is a closure or a macro.
func Is(c cell.I) bool {
	_, ok := c.(*lambda)

	return ok
}

// To returns a closure if c is a closure or a macro; Otherwise it panics.
func To(c cell.I) *lambda {
	if t, ok := c.(*lambda); ok {
		return t
	}

	panic(c.Name() + " is not a " + lambdaName)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t lambda

	// The lambda type is a cell.
	_ = cell.I(&t)

	// The lambda type has a literal representation.
	_ = literal.I(&t)

	// The lambda type is a stringer.
	_ = common.Stringer(&t)
}
