// Released under an MIT license. See LICENSE.

// Package token is shared by the lisp lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/Mg138/lisp/internal/common/struct/loc"
)

// Class is a token's type.
// The single character tokens '(', ')' and '\'' use the character itself.
type Class rune

// Multi-character token classes. They sit above every valid rune.
const (
	String Class = unicode.MaxRune + 1 + iota
	Symbol
	Unterminated // A string still open at the end of input.
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns the name of the class c.
func (c Class) String() string {
	switch c {
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Unterminated:
		return "Unterminated"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Source returns where the token starts.
func (t *token) Source() *loc.T {
	return &t.source
}

// String returns the token's text, class and location.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.class.String() + "," + t.source.String() + ")"
}

// Value returns the token's text.
func (t *token) Value() string {
	return t.value
}
