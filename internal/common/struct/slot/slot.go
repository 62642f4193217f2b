// Released under an MIT license. See LICENSE.

// Package slot provides the storage behind a single lisp binding.
package slot

import (
	"sync"

	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/reference"
)

// T (slot) holds the current value of a binding.
type T struct {
	sync.RWMutex
	value cell.I
}

type slot = T

// New creates a slot holding v.
func New(v cell.I) *slot {
	return &slot{value: v}
}

// Get returns the current value.
func (s *slot) Get() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.value
}

// Set replaces the current value with v. Everything sharing the slot sees v.
func (s *slot) Set(v cell.I) {
	s.Lock()
	defer s.Unlock()

	s.value = v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slot

	// The slot type is a reference.
	_ = reference.I(&t)
}
