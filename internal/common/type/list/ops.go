// Released under an MIT license. See LICENSE.

package list

import (
	"iter"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/type/pair"
)

// Append appends each element in elements to the end of l, in place.
// If l is empty, a new list is created.
// The list must be non-circular.
func Append(l T, elements ...cell.I) T {
	if len(elements) == 0 {
		return l
	}

	if l.head == nil {
		l = T{head: pair.New(elements[0], nil)}
		elements = elements[1:]
	}

	end := l.head
	for next := end.Cdr(); next != nil; next = next.Cdr() {
		end = next
	}

	for _, e := range elements {
		p := pair.New(e, nil)
		end.SetCdr(p)
		end = p
	}

	return l
}

// DeepEqual returns true if a and b are lists of the same length with
// items that are pairwise DeepEqual, or if a and b are Equal non-lists.
// Both lists must be non-circular.
func DeepEqual(a, b cell.I) bool {
	l, lok := a.(list)
	r, rok := b.(list)

	if !lok || !rok {
		return lok == rok && a.Equal(b)
	}

	lp, rp := l.head, r.head
	for lp != nil && rp != nil {
		if lp == rp {
			return true
		}

		var lcar, rcar cell.I

		lcar, lp = lp.Get()
		rcar, rp = rp.Get()

		if !DeepEqual(lcar, rcar) {
			return false
		}
	}

	return lp == nil && rp == nil
}

// FromSeq creates a new list composed of the items produced by seq.
func FromSeq(seq iter.Seq[cell.I]) T {
	var start, end *pair.T

	for c := range seq {
		p := pair.New(c, nil)

		if start == nil {
			start = p
		} else {
			end.SetCdr(p)
		}

		end = p
	}

	return T{head: start}
}

// Length returns the number of items in the list l.
// The list must be non-circular.
func Length(l T) int64 {
	var length int64

	for p := l.head; p != nil; p = p.Cdr() {
		length++
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) T {
	var head *pair.T

	for i := len(elements) - 1; i >= 0; i-- {
		head = pair.New(elements[i], head)
	}

	return T{head: head}
}

// Reverse returns a new list with the items of l in reverse order.
// The list must be non-circular.
func Reverse(l T) T {
	reversed := Null

	for c := range l.All() {
		reversed = Cons(c, reversed)
	}

	return reversed
}

// Slice creates a new list that is a copy of the items of l from start up to,
// but not including, end. Negative values count backwards from the end of l.
// An end of zero means the end of the list.
// The list must be non-circular.
func Slice(l T, start, end int64) (T, error) {
	length := Length(l)

	if start < 0 {
		start = length + start
	}

	if start < 0 {
		return Null, fail.New(fail.Type, "slice starts before first element")
	} else if start > length {
		start = length
	}

	if end <= 0 {
		end = length + end
	}

	if end < 0 {
		return Null, fail.New(fail.Type, "slice ends before first element")
	} else if end > length {
		end = length
	}

	if end < start {
		return Null, fail.New(fail.Type, "end of slice before start")
	}

	return FromSeq(func(yield func(cell.I) bool) {
		var i int64

		for c := range l.All() {
			if i >= end {
				return
			}

			if i >= start && !yield(c) {
				return
			}

			i++
		}
	}), nil
}

// Tail returns the sublist of l starting at item index.
// Negative values of index count backwards from the end of l.
// The list must be non-circular.
func Tail(l T, index int64) (T, error) {
	length := Length(l)

	if index < 0 {
		index = length + index
	}

	if index < 0 {
		return Null, fail.New(fail.Type, "index before first element")
	} else if index >= length {
		return Null, fail.New(fail.Type, "index after last element")
	}

	for index > 0 {
		l = Cdr(l)

		index--
	}

	return l, nil
}

// Values returns the items in the list l as a slice.
// The list must be non-circular.
func Values(l T) []cell.I {
	var items []cell.I

	for c := range l.All() {
		items = append(items, c)
	}

	return items
}
