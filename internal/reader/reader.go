// Released under an MIT license. See LICENSE.

// Package reader turns lisp source text into cells.
package reader

import (
	"errors"
	"io"
	"iter"

	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/reader/lexer"
	"github.com/Mg138/lisp/internal/reader/parser"
)

// Parse returns a lazy sequence of the top-level forms in text. Each item
// is either a form or the error encountered while parsing it. Parsing
// continues with the next form after an error unless the text ended inside
// the failed form. Name labels the source in error messages.
func Parse(name, text string) iter.Seq2[cell.I, error] {
	return func(yield func(cell.I, error) bool) {
		p := parser.New(lexer.New(name, text))

		for {
			c, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(c, err) || Incomplete(err) {
				return
			}
		}
	}
}

// Incomplete returns true if err was caused by text ending inside a form.
func Incomplete(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}
