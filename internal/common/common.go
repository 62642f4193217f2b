// Released under an MIT license. See LICENSE.

// Package common defines common interfaces and helpers.
package common

import (
	"fmt"
	"hash/fnv"

	"github.com/Mg138/lisp/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
// The second return value is false if c has no string value.
func String(c cell.I) (string, bool) {
	s, ok := c.(Stringer)
	if !ok {
		return "", false
	}

	return s.String(), true
}

// Hash returns a 64-bit FNV-1a hash of the type name n and the text s.
func Hash(n, s string) uint64 {
	h := fnv.New64a()

	_, _ = h.Write([]byte(n))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

// Mix combines the hash values in hs into a single hash.
func Mix(hs ...uint64) uint64 {
	var r uint64 = 14695981039346656037

	for _, h := range hs {
		r ^= h
		r *= 1099511628211
	}

	return r
}
