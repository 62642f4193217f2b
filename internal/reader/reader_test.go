// Released under an MIT license. See LICENSE.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/boolean"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/common/type/sym"
	"github.com/Mg138/lisp/internal/reader"
)

func parse(text string) ([]cell.I, []error) {
	forms := []cell.I{}
	errs := []error{}

	for c, err := range reader.Parse("test", text) {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		forms = append(forms, c)
	}

	return forms, errs
}

func literals(cs []cell.I) []string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = literal.String(c)
	}

	return s
}

func TestAtoms(t *testing.T) {
	forms, errs := parse(`1 -2 3.5 1e3 "s" x T F NIL + -`)
	require.Empty(t, errs)
	require.Len(t, forms, 11)

	assert.Equal(t, num.NewInt(1), forms[0])
	assert.Equal(t, num.NewInt(-2), forms[1])
	assert.Equal(t, num.NewFloat(3.5), forms[2])
	assert.Equal(t, num.NewFloat(1000), forms[3])
	assert.Equal(t, str.New("s"), forms[4])
	assert.Same(t, sym.New("x"), forms[5])
	assert.Equal(t, boolean.True, forms[6])
	assert.Equal(t, boolean.False, forms[7])
	assert.Equal(t, list.Null, forms[8])
	assert.True(t, sym.Is(forms[9]))
	assert.True(t, sym.Is(forms[10]))
}

func TestLists(t *testing.T) {
	forms, errs := parse("(a (b c) ()) 'x '(1 2)")
	require.Empty(t, errs)

	assert.Equal(t, []string{"(a (b c) NIL)", "(quote x)", "(quote (1 2))"}, literals(forms))
}

func TestStrings(t *testing.T) {
	forms, errs := parse(`"tab\there" "quote\"d" "\x41é"`)
	require.Empty(t, errs)
	require.Len(t, forms, 3)

	assert.Equal(t, str.New("tab\there"), forms[0])
	assert.Equal(t, str.New(`quote"d`), forms[1])
	assert.Equal(t, str.New("Aé"), forms[2])
}

func TestRecovery(t *testing.T) {
	forms, errs := parse(`(a "\q" b) c ) d (e ') f`)

	assert.Equal(t, []string{"c", "d", "f"}, literals(forms))
	require.Len(t, errs, 3)

	for _, err := range errs {
		assert.ErrorIs(t, err, fail.Parse)
		assert.False(t, reader.Incomplete(err))
	}
}

func TestIncomplete(t *testing.T) {
	for _, text := range []string{"(a", "(a (b)", `"open`, "'", "(a '"} {
		forms, errs := parse("ok " + text)

		assert.Equal(t, []string{"ok"}, literals(forms), text)

		if assert.Len(t, errs, 1, text) {
			assert.True(t, reader.Incomplete(errs[0]), text)
			assert.ErrorIs(t, errs[0], fail.Parse, text)
		}
	}
}

func TestErrorLocation(t *testing.T) {
	_, errs := parse("\n  )")

	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "parse error: test:2:3: unexpected ')'")
}

func TestLazy(t *testing.T) {
	seen := 0

	for range reader.Parse("test", "1 2 3") {
		seen++

		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}
