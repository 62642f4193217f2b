// Released under an MIT license. See LICENSE.

package sym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/common/type/sym"
)

func TestInterning(t *testing.T) {
	a := sym.New("abc")

	assert.Same(t, a, sym.New("abc"))
	assert.True(t, a.Equal(sym.New("abc")))
	assert.False(t, a.Equal(sym.New("abd")))
	assert.False(t, a.Equal(str.New("abc")), "a symbol is not equal to a string with the same text")
	assert.Equal(t, a.Hash(), sym.New("abc").Hash())
}

func TestNamed(t *testing.T) {
	assert.True(t, sym.Named(sym.New("begin"), "begin"))
	assert.False(t, sym.Named(sym.New("begin"), "end"))
	assert.False(t, sym.Named(str.New("begin"), "begin"))
}
