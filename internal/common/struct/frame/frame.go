// Released under an MIT license. See LICENSE.

// Package frame provides the bindings held by a single lisp environment.
package frame

import (
	"sort"
	"sync"

	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/reference"
	"github.com/Mg138/lisp/internal/common/struct/slot"
)

// T (frame) maps names to slots. Each method holds the frame's lock only
// for its own duration.
type T struct {
	sync.RWMutex
	slots map[string]reference.I
}

type frame = T

// New creates an empty frame.
func New() *frame {
	return &frame{slots: map[string]reference.I{}}
}

// Bind defines each of names with the value at the same index in values.
// All of the bindings become visible at once.
func (f *frame) Bind(names []string, values []cell.I) {
	f.Lock()
	defer f.Unlock()

	for i, k := range names {
		f.slots[k] = slot.New(values[i])
	}
}

// Define binds k to v. An existing binding for k is replaced by a new slot
// so references already handed out for k keep their old value.
func (f *frame) Define(k string, v cell.I) {
	f.Lock()
	defer f.Unlock()

	f.slots[k] = slot.New(v)
}

// Lookup returns the slot bound to k, or nil.
func (f *frame) Lookup(k string) reference.I {
	f.RLock()
	defer f.RUnlock()

	return f.slots[k]
}

// Names returns the bound names in sorted order.
func (f *frame) Names() []string {
	f.RLock()
	defer f.RUnlock()

	names := make([]string, 0, len(f.slots))
	for k := range f.slots {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Remove unbinds k. It returns false if k was not bound.
func (f *frame) Remove(k string) bool {
	f.Lock()
	defer f.Unlock()

	if _, ok := f.slots[k]; !ok {
		return false
	}

	delete(f.slots, k)

	return true
}

// Size returns the number of bindings.
func (f *frame) Size() int {
	f.RLock()
	defer f.RUnlock()

	return len(f.slots)
}
