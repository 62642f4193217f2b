// Released under an MIT license. See LICENSE.

// Package parser turns the tokens produced by the lisp lexer into cells.
package parser

import (
	"io"

	"github.com/michaelmacinnis/adapted"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/struct/token"
	"github.com/Mg138/lisp/internal/common/type/boolean"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/common/type/sym"
)

// Lexer is the interface the parser uses to get tokens.
type Lexer interface {
	Token() *token.T
}

// T (parser) reads one top-level form at a time.
type T struct {
	depth int // Number of unclosed lists.
	lexer Lexer
}

type parser = T

// New creates a new parser reading tokens from l.
func New(l Lexer) *T {
	return &T{lexer: l}
}

// Next returns the next top-level form.
// At the end of input it returns io.EOF. If the input ends inside a form,
// the error returned wraps io.ErrUnexpectedEOF. After any other error the
// rest of the failed top-level form is skipped.
func (p *parser) Next() (cell.I, error) {
	t := p.lexer.Token()
	if t == nil {
		return nil, io.EOF
	}

	c, err := p.form(t)
	if err != nil && p.depth > 0 {
		p.recover()
	}

	return c, err
}

func (p *parser) form(t *token.T) (cell.I, error) {
	switch t.Class() {
	case '(':
		return p.list(t)
	case ')':
		// Only reached after a quote. The ')' still closes the enclosing list.
		if p.depth > 0 {
			p.depth--
		}

		return nil, failure(t, "unexpected ')'")
	case '\'':
		n := p.lexer.Token()
		if n == nil {
			return nil, incomplete(t, "expected a form after quote")
		}

		c, err := p.form(n)
		if err != nil {
			return nil, err
		}

		return list.New(sym.New("quote"), c), nil
	case token.String:
		return literal(t)
	case token.Symbol:
		return atom(t.Value()), nil
	case token.Unterminated:
		return nil, incomplete(t, "unterminated string")
	}

	return nil, failure(t, "unexpected token "+t.String())
}

func (p *parser) list(open *token.T) (cell.I, error) {
	p.depth++

	items := []cell.I{}

	for {
		t := p.lexer.Token()
		if t == nil {
			return nil, incomplete(open, "unclosed '('")
		}

		if t.Class() == ')' {
			p.depth--

			return list.New(items...), nil
		}

		c, err := p.form(t)
		if err != nil {
			return nil, err
		}

		items = append(items, c)
	}
}

func (p *parser) recover() {
	for p.depth > 0 {
		t := p.lexer.Token()
		if t == nil {
			return
		}

		switch t.Class() {
		case '(':
			p.depth++
		case ')':
			p.depth--
		}
	}
}

func atom(s string) cell.I {
	if s == "NIL" {
		return list.Null
	}

	if b, ok := boolean.New(s); ok {
		return b
	}

	if n, ok := num.New(s); ok {
		return n
	}

	return sym.New(s)
}

func failure(t *token.T, msg string) error {
	return fail.New(fail.Parse, "%s: %s", t.Source().String(), msg)
}

func incomplete(t *token.T, msg string) error {
	return fail.Wrap(fail.Parse, io.ErrUnexpectedEOF, "%s: %s", t.Source().String(), msg)
}

func literal(t *token.T) (cell.I, error) {
	v := t.Value()

	s, err := adapted.ActualBytes(v[1 : len(v)-1])
	if err != nil {
		return nil, fail.Wrap(fail.Parse, err, "%s: %s", t.Source().String(), err.Error())
	}

	return str.New(s), nil
}
