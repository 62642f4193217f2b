// Released under an MIT license. See LICENSE.

// Package list provides lisp's list type.
//
// A list is a handle to a chain of shared cons cells. The empty list, NIL,
// is the handle with no head cell. Consing never modifies an existing cell,
// so tails are shared between lists. Cells can be modified in place with
// SetCar and SetCdr and any such change is visible through every list that
// shares the cell.
package list

import (
	"iter"
	"strings"

	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/interface/truth"
	"github.com/Mg138/lisp/internal/common/type/pair"
)

const name = "list"

// T (list) refers to the head cell of a chain of cells, if any.
type T struct {
	head *pair.T
}

type list = T

//nolint:gochecknoglobals
var (
	// Null is the empty list, NIL.
	Null = T{}
)

// All returns an iterator over the items in the list l.
// Each step reads one cell under that cell's lock. Iterating again
// starts over at l's head cell and observes any changes made since.
// The list must be non-circular for iteration to terminate.
func (l list) All() iter.Seq[cell.I] {
	return func(yield func(cell.I) bool) {
		for p := l.head; p != nil; {
			var car cell.I

			car, p = p.Get()

			if !yield(car) {
				return
			}
		}
	}
}

// Bool returns false for the empty list and true otherwise.
func (l list) Bool() bool {
	return l.head != nil
}

// Equal returns true if c is a list whose first item equals l's first item,
// or if both l and c are the empty list. The rest of each list is ignored.
// Use DeepEqual to compare every item.
func (l list) Equal(c cell.I) bool {
	o, ok := c.(list)
	if !ok {
		return false
	}

	if l.head == nil || o.head == nil {
		return l.head == nil && o.head == nil
	}

	if l.head == o.head {
		return true
	}

	return l.head.Car().Equal(o.head.Car())
}

// Hash returns a hash value consistent with Equal: the hash of the first item.
func (l list) Hash() uint64 {
	if l.head == nil {
		return common.Hash(name, "")
	}

	return common.Mix(common.Hash(name, "("), l.head.Car().Hash())
}

// Head returns the head cell of the list l or nil if l is empty.
func (l list) Head() *pair.T {
	return l.head
}

// Literal returns the literal representation of the list l.
func (l list) Literal() string {
	if l.head == nil {
		return "NIL"
	}

	var b strings.Builder

	b.WriteByte('(')

	sep := ""
	for c := range l.All() {
		b.WriteString(sep)
		b.WriteString(literal.String(c))

		sep = " "
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the type name for the list l.
func (l list) Name() string {
	return name
}

// String returns the text of the list l.
func (l list) String() string {
	return l.Literal()
}

// Functions specific to list.

// Car returns the first item in the list l.
// If l is empty, an EmptyList error is returned.
func Car(l T) (cell.I, error) {
	if l.head == nil {
		return nil, fail.EmptyListAccess("car")
	}

	return l.head.Car(), nil
}

// Cdr returns the list following the first item in l.
// The cdr of the empty list is the empty list.
func Cdr(l T) T {
	if l.head == nil {
		return Null
	}

	return T{head: l.head.Cdr()}
}

// Cons returns a new list with v as its first item followed by the items in l.
// The cells of l are shared, not copied.
func Cons(v cell.I, l T) T {
	return T{head: pair.New(v, l.head)}
}

// SetCar replaces the first item in the list l with v.
func SetCar(l T, v cell.I) error {
	if l.head == nil {
		return fail.EmptyListAccess("set-car!")
	}

	l.head.SetCar(v)

	return nil
}

// SetCdr makes tail follow the first item in the list l.
func SetCdr(l T, tail T) error {
	if l.head == nil {
		return fail.EmptyListAccess("set-cdr!")
	}

	l.head.SetCdr(tail.head)

	return nil
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(list)

	return ok
}

// IsNull returns true if c is the empty list.
func IsNull(c cell.I) bool {
	l, ok := c.(list)

	return ok && l.head == nil
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) T {
	if t, ok := c.(list); ok {
		return t
	}

	panic(c.Name() + " cannot be used as a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(t)

	// The list type has a literal representation.
	_ = literal.I(t)

	// The list type is a stringer.
	_ = common.Stringer(t)

	// The list type has a truth value.
	_ = truth.I(t)
}
