// Released under an MIT license. See LICENSE.

// Package sym provides lisp's symbol cell type.
package sym

import (
	"sync"

	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type. Symbols are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && (s == To(c) || s.String() == To(c).String())
}

// Hash returns the hash value of the sym s.
func (s *sym) Hash() uint64 {
	return common.Hash(name, string(*s))
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + name)
}

// Named returns true if c is the symbol s.
func Named(c cell.I, s string) bool {
	t, ok := c.(*sym)

	return ok && string(*t) == s
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	p, ok := symtry(v)
	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s

	cache[v] = p

	return p
}

func symtry(v string) (*sym, bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok := cache[v]

	return p, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
