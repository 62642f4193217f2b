// Released under an MIT license. See LICENSE.

// Package builtin provides lisp's type for procedures implemented in Go.
package builtin

import (
	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/env"
)

const name = "builtin"

// Func is the signature for Go functions callable from lisp.
// The arguments have already been evaluated. The env is the caller's.
type Func func(e *env.T, args []cell.I) (cell.I, error)

// T (builtin) is a named Go function.
type T struct {
	fn   Func
	name string
}

type builtin = T

// New creates a new builtin called n.
func New(n string, fn Func) *builtin {
	return &builtin{fn: fn, name: n}
}

// Call invokes b with the arguments args in the env e.
func (b *builtin) Call(e *env.T, args []cell.I) (cell.I, error) {
	return b.fn(e, args)
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	o, ok := c.(*builtin)

	return ok && o == b
}

// Hash returns the hash value of the builtin b.
func (b *builtin) Hash() uint64 {
	return common.Hash(name, b.name)
}

// Literal returns the literal representation of the builtin b.
func (b *builtin) Literal() string {
	return "<" + name + " " + b.name + ">"
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// String returns the text of the builtin b.
func (b *builtin) String() string {
	return b.name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)
}
