// Released under an MIT license. See LICENSE.

// Package pair provides lisp's cons cell type.
//
// A cell may be shared by any number of lists. Each cell is guarded by its
// own mutex so that a change to a cell's car or cdr is safely visible to
// every list that shares it.
package pair

import (
	"sync"

	"github.com/Mg138/lisp/internal/common/interface/cell"
)

// T (pair) is a cons cell.
type T struct {
	sync.Mutex
	car cell.I
	cdr *T
}

type pair = T

// New creates a new cell holding car and followed by cdr.
func New(car cell.I, cdr *T) *pair {
	return &pair{car: car, cdr: cdr}
}

// Car returns the car/head/first member of the cell p.
func (p *pair) Car() cell.I {
	p.Lock()
	defer p.Unlock()

	return p.car
}

// Cdr returns the cell following p or nil if p is the last cell.
func (p *pair) Cdr() *pair {
	p.Lock()
	defer p.Unlock()

	return p.cdr
}

// Get returns the car and cdr of the cell p as a single atomic read.
func (p *pair) Get() (cell.I, *pair) {
	p.Lock()
	defer p.Unlock()

	return p.car, p.cdr
}

// SetCar sets the car/head/first of the cell p to v.
func (p *pair) SetCar(v cell.I) {
	p.Lock()
	defer p.Unlock()

	p.car = v
}

// SetCdr sets the cell following p to next.
// A nil next makes p the last cell.
func (p *pair) SetCdr(next *pair) {
	p.Lock()
	defer p.Unlock()

	p.cdr = next
}
