// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lisp values.
package cell

// I (cell) is the basic unit of storage in lisp.
type I interface {
	Equal(c I) bool
	Hash() uint64
	Name() string
}
