// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for lisp.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/reader"
	"github.com/Mg138/lisp/internal/system/history"
)

const (
	continued = "  "
	prompt    = "> "
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

// Run launches the UI which sends forms to the Evaluator until end of input.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	err := history.Load(cli.ReadHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading history: %v\n", err)
	}

	session := &Session{Evaluator: e, Stdout: os.Stdout, Stderr: os.Stderr}

	for {
		p := prompt
		if session.Pending() {
			p = continued
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}

			session.Line(line)

			continue
		case errors.Is(err, liner.ErrPromptAborted):
			session.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		break
	}

	return history.Save(cli.WriteHistory)
}

// Session accumulates input lines until they hold complete forms and then
// evaluates those forms, printing each result or error.
type Session struct {
	Evaluator
	Stderr io.Writer
	Stdout io.Writer

	buffer string
}

// Line adds line to the pending input and evaluates any complete forms.
func (s *Session) Line(line string) {
	s.buffer += line + "\n"

	errs := []error{}
	forms := []cell.I{}

	for c, err := range reader.Parse("repl", s.buffer) {
		if reader.Incomplete(err) {
			return
		}

		if err != nil {
			errs = append(errs, err)

			continue
		}

		forms = append(forms, c)
	}

	for _, err := range errs {
		fmt.Fprintf(s.Stderr, "error: %v\n", err)
	}

	s.buffer = ""

	for _, c := range forms {
		v, err := s.Evaluate(c)
		if err != nil {
			fmt.Fprintf(s.Stderr, "error: %v\n", err)

			return
		}

		fmt.Fprintln(s.Stdout, literal.String(v))
	}
}

// Pending returns true if there is input waiting for the rest of a form.
func (s *Session) Pending() bool {
	return s.buffer != ""
}

// Reset discards any pending input.
func (s *Session) Reset() {
	s.buffer = ""
}

func complete(names []string, line string, pos int) (string, []string, string) {
	head := line[:pos]
	tail := line[pos:]

	start := strings.LastIndexAny(head, " \t\n()'") + 1
	word := head[start:]
	head = head[:start]

	if word == "" {
		return head, nil, tail
	}

	completions := []string{}

	for _, n := range names {
		if strings.HasPrefix(n, word) {
			completions = append(completions, n)
		}
	}

	sort.Strings(completions)

	return head, completions, tail
}
