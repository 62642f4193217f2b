// Released under an MIT license. See LICENSE.

// Package num provides lisp's integer and floating point number types.
package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/Mg138/lisp/internal/common"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
)

const (
	floatName = "float"
	intName   = "int"
)

// Int wraps Go's int64 type.
type Int int64

// Float wraps Go's float64 type.
type Float float64

// New parses the text s as an Int or, failing that, a Float.
// The second return value is false if s is not a number.
func New(s string) (cell.I, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt(i), true
	}

	if !strings.ContainsAny(s, "0123456789") {
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}

	return NewFloat(f), true
}

// NewInt creates an Int cell.
func NewInt(i int64) cell.I {
	v := Int(i)

	return &v
}

// NewFloat creates a Float cell.
func NewFloat(f float64) cell.I {
	v := Float(f)

	return &v
}

// Equal returns true if c is an Int with the same value as i.
func (i *Int) Equal(c cell.I) bool {
	o, ok := c.(*Int)

	return ok && *o == *i
}

// Hash returns the hash value of the Int i.
func (i *Int) Hash() uint64 {
	return common.Hash(intName, i.String())
}

// Literal returns the literal representation of the Int i.
func (i *Int) Literal() string {
	return i.String()
}

// Name returns the type name for the Int i.
func (i *Int) Name() string {
	return intName
}

// String returns the text of the Int i.
func (i *Int) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Equal returns true if c is a Float with the same value as f.
func (f *Float) Equal(c cell.I) bool {
	o, ok := c.(*Float)

	return ok && *o == *f
}

// Hash returns the hash value of the Float f.
// Zero and negative zero are Equal so they hash the same.
func (f *Float) Hash() uint64 {
	v := float64(*f)
	if v == 0 {
		v = 0
	}

	return common.Hash(floatName, strconv.FormatUint(math.Float64bits(v), 16))
}

// Literal returns the literal representation of the Float f.
func (f *Float) Literal() string {
	return f.String()
}

// Name returns the type name for the Float f.
func (f *Float) Name() string {
	return floatName
}

// String returns the text of the Float f.
// Integral values keep a trailing ".0" so they read back as floats.
func (f *Float) String() string {
	s := strconv.FormatFloat(float64(*f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

// Functions specific to num.

// Is returns true if c is an Int or a Float.
func Is(c cell.I) bool {
	switch c.(type) {
	case *Int, *Float:
		return true
	}

	return false
}

// IsInt returns true if c is an Int.
func IsInt(c cell.I) bool {
	_, ok := c.(*Int)

	return ok
}

// IsFloat returns true if c is a Float.
func IsFloat(c cell.I) bool {
	_, ok := c.(*Float)

	return ok
}

// Float64 returns the value of the number c as a float64.
// If c is not a number, this function will panic.
func Float64(c cell.I) float64 {
	switch t := c.(type) {
	case *Int:
		return float64(*t)
	case *Float:
		return float64(*t)
	}

	panic(c.Name() + " is not a number")
}

// Int64 returns the value of the Int c.
// If c is not an Int, this function will panic.
func Int64(c cell.I) int64 {
	if t, ok := c.(*Int); ok {
		return int64(*t)
	}

	panic(c.Name() + " is not an " + intName)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var i Int

	// The Int type is a cell.
	_ = cell.I(&i)

	// The Int type has a literal representation.
	_ = literal.I(&i)

	// The Int type is a stringer.
	_ = common.Stringer(&i)

	var f Float

	// The Float type is a cell.
	_ = cell.I(&f)

	// The Float type has a literal representation.
	_ = literal.I(&f)

	// The Float type is a stringer.
	_ = common.Stringer(&f)
}
