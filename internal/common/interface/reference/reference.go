// Released under an MIT license. See LICENSE.

// Package reference defines the interface for a binding's storage.
package reference

import (
	"github.com/Mg138/lisp/internal/common/interface/cell"
)

// I (reference) is a mutable location shared by everything that resolved
// the same binding.
type I interface {
	Get() cell.I
	Set(cell.I)
}
