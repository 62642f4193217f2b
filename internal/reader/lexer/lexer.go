// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for lisp.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/Mg138/lisp/internal/common/struct/loc"
	"github.com/Mg138/lisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	current loc.T // Location of the current byte.
	source  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	start := loc.T{
		Char: 1,
		Line: 1,
		Name: label,
	}

	return &T{
		bytes:   text,
		current: start,
		source:  start,
		state:   skipWhitespace,
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no tokens remain.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.current.Line++
		l.current.Char = 1
	} else {
		l.current.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source = l.current
	l.first = l.index
}

func delimiter(r token.Class) bool {
	switch r {
	case eof, '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
		return true
	}

	return false
}

// T states.

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated, l.Text())

			return nil
		case '\\':
			if r, w := l.peek(); r != eof {
				l.accept(r, w)
			}
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()

			continue
		case ';':
			return scanComment
		case '"':
			l.accept(r, w)

			return scanString
		case '\'', '(', ')':
			l.accept(r, w)
			l.emit(r, l.Text())

			return skipWhitespace
		}

		return scanSymbol
	}
}
