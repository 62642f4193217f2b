// Released under an MIT license. See LICENSE.

// Package env provides lisp's environment type.
//
// An environment is a frame of bindings plus a reference to the enclosing
// environment. Environments are shared, not copied: a closure holds a
// reference to the environment where it was created and sees any later
// change to it. Each read or write of a frame takes the frame's lock for
// the duration of that single operation only.
package env

import (
	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/reference"
	"github.com/Mg138/lisp/internal/common/struct/frame"
)

// T (env) maps names to values and refers to its enclosing env.
type T struct {
	previous *T
	frame    *frame.T
}

type env = T

// New creates a new env enclosed by previous. A nil previous creates a root env.
func New(previous *T) *env {
	return &env{
		previous: previous,
		frame:    frame.New(),
	}
}

// Bind defines each of names in e's own frame with the value at the same
// index in values. Values must have at least as many items as names.
func (e *env) Bind(names []string, values []cell.I) {
	e.frame.Bind(names, values)
}

// Child creates a new env enclosed by e.
func (e *env) Child() *env {
	return New(e)
}

// Define associates the name k with the cell v in e's own frame.
// Any existing association for k in e is replaced. Enclosing envs are not modified.
func (e *env) Define(k string, v cell.I) {
	e.frame.Define(k, v)
}

// Enclosing returns the enclosing env, or nil for a root env.
func (e *env) Enclosing() *env {
	return e.previous
}

// Has returns true if the name k is bound in e's own frame.
func (e *env) Has(k string) bool {
	return e.frame.Lookup(k) != nil
}

// Lookup retrieves the value associated with the name k in e or an enclosing env.
func (e *env) Lookup(k string) (cell.I, error) {
	r := e.Resolve(k)
	if r == nil {
		return nil, fail.UnboundSymbol(k)
	}

	return r.Get(), nil
}

// Names returns the names bound in e and every enclosing env, without duplicates.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for f := e; f != nil; f = f.previous {
		for _, k := range f.frame.Names() {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	return names
}

// Remove deletes the name k from e's own frame.
func (e *env) Remove(k string) bool {
	return e.frame.Remove(k)
}

// Resolve retrieves the reference associated with the name k in the nearest
// env, starting at e, that binds k. It returns nil if no env binds k.
func (e *env) Resolve(k string) reference.I {
	for f := e; f != nil; f = f.previous {
		if r := f.frame.Lookup(k); r != nil {
			return r
		}
	}

	return nil
}

// Set updates the value associated with the name k in the nearest env,
// starting at e, that binds k. If no env binds k, an Unbound error is returned.
func (e *env) Set(k string, v cell.I) error {
	r := e.Resolve(k)
	if r == nil {
		return fail.UnboundSymbol(k)
	}

	r.Set(v)

	return nil
}

// Size returns the number of names bound in e's own frame.
func (e *env) Size() int {
	return e.frame.Size()
}
