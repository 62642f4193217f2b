// Released under an MIT license. See LICENSE.

package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/engine"
	"github.com/Mg138/lisp/internal/engine/commands"
)

type test struct {
	name     string
	text     string
	expected string
	kind     fail.Kind
}

func check(t *testing.T, tests []test) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := engine.New(&bytes.Buffer{})
			require.NoError(t, err)

			v, err := e.Source(tc.name, tc.text, engine.StopOnParseError)
			if tc.kind != fail.Unknown {
				require.Error(t, err, tc.text)
				assert.ErrorIs(t, err, tc.kind, tc.text)

				return
			}

			require.NoError(t, err, tc.text)
			assert.Equal(t, tc.expected, literal.String(v), tc.text)
		})
	}
}

func TestArithmetic(t *testing.T) {
	check(t, []test{
		{name: "add", text: "(+ 1 2 3)", expected: "6"},
		{name: "add nothing", text: "(+)", expected: "0"},
		{name: "add floats", text: "(+ 1 2.5)", expected: "3.5"},
		{name: "subtract", text: "(- 10 3 2)", expected: "5"},
		{name: "negate", text: "(- 4)", expected: "-4"},
		{name: "multiply", text: "(* 2 3 4)", expected: "24"},
		{name: "multiply nothing", text: "(*)", expected: "1"},
		{name: "divide", text: "(/ 7 2)", expected: "3"},
		{name: "divide floats", text: "(/ 7.0 2)", expected: "3.5"},
		{name: "reciprocal", text: "(/ 2.0)", expected: "0.5"},
		{name: "float result", text: "(* 2.0 3)", expected: "6.0"},
		{name: "modulo", text: "(% 7 3)", expected: "1"},
		{name: "divide by zero", text: "(/ 1 0)", kind: fail.Type},
		{name: "modulo by zero", text: "(% 1 0)", kind: fail.Type},
		{name: "add string", text: `(+ 1 "2")`, kind: fail.Type},
		{name: "subtract nothing", text: "(-)", kind: fail.Arity},
		{name: "modulo arity", text: "(% 1)", kind: fail.Arity},
	})
}

func TestRelational(t *testing.T) {
	check(t, []test{
		{name: "equal numbers", text: "(= 1 1.0)", expected: "T"},
		{name: "unequal numbers", text: "(= 1 2)", expected: "F"},
		{name: "unequal large ints", text: "(= 9007199254740993 9007199254740992)", expected: "F"},
		{name: "equal large ints", text: "(= 9007199254740993 9007199254740993)", expected: "T"},
		{name: "signed zeros", text: "(eq? 0.0 -0.0)", expected: "T"},
		{name: "equal strings", text: `(= "a" "a")`, expected: "T"},
		{name: "less", text: "(< 1 2 3)", expected: "T"},
		{name: "not less", text: "(< 1 3 2)", expected: "F"},
		{name: "less or equal", text: "(<= 1 1 2)", expected: "T"},
		{name: "greater", text: "(> 3 2.5)", expected: "T"},
		{name: "greater or equal", text: "(>= 1 2)", expected: "F"},
		{name: "compare string", text: `(< 1 "2")`, kind: fail.Type},
		{name: "compare one", text: "(< 1)", kind: fail.Arity},
		{name: "eq compares heads", text: "(eq? '(1 2) '(1 3))", expected: "T"},
		{name: "eq different heads", text: "(eq? '(1 2) '(2 2))", expected: "F"},
		{name: "eq int and float", text: "(eq? 1 1.0)", expected: "F"},
		{name: "eq symbols", text: "(eq? 'a 'a)", expected: "T"},
		{name: "equal compares items", text: "(equal? '(1 2) '(1 3))", expected: "F"},
		{name: "equal lists", text: "(equal? '(1 (2)) '(1 (2)))", expected: "T"},
		{name: "eq same closure", text: "(define f (lambda () 1)) (eq? f f)", expected: "T"},
		{name: "eq closures with different bodies", text: "(eq? (lambda (n) 1) (lambda (n) 2))", expected: "F"},
		{
			name:     "eq closures with different body forms",
			text:     "(eq? (lambda (n) (* n n)) (lambda (n) (+ n 1)))",
			expected: "F",
		},
		{name: "eq closures with the same body", text: "(eq? (lambda (n) 1) (lambda (n) 1))", expected: "T"},
		{
			name:     "eq closures over different envs",
			text:     "(define mk (lambda () (lambda () 1))) (eq? (mk) (mk))",
			expected: "F",
		},
	})
}

func TestLists(t *testing.T) {
	check(t, []test{
		{name: "car", text: "(car '(1 2))", expected: "1"},
		{name: "car of nil", text: "(car '())", kind: fail.EmptyList},
		{name: "car of number", text: "(car 1)", kind: fail.Type},
		{name: "cdr", text: "(cdr '(1 2))", expected: "(2)"},
		{name: "cdr of nil", text: "(cdr '())", expected: "NIL"},
		{name: "cons", text: "(cons 1 '(2))", expected: "(1 2)"},
		{name: "cons onto nil", text: "(cons 1 '())", expected: "(1)"},
		{name: "cons onto number", text: "(cons 1 2)", kind: fail.Type},
		{name: "list", text: "(list 1 (+ 1 1) 'x)", expected: "(1 2 x)"},
		{name: "empty list", text: "(list)", expected: "NIL"},
		{name: "list?", text: "(list? '())", expected: "T"},
		{name: "not list?", text: "(list? 1)", expected: "F"},
		{name: "null?", text: "(null? '())", expected: "T"},
		{name: "not null?", text: "(null? '(1))", expected: "F"},
		{name: "length", text: "(length '(1 2 3))", expected: "3"},
		{name: "nth", text: "(nth 1 '(a b c))", expected: "b"},
		{name: "nth past end", text: "(nth 3 '(a b c))", kind: fail.Type},
		{name: "reverse", text: "(reverse '(1 2 3))", expected: "(3 2 1)"},
		{name: "slice", text: "(slice '(1 2 3 4) 1 3)", expected: "(2 3)"},
		{name: "slice to end", text: "(slice '(1 2 3 4) 2)", expected: "(3 4)"},
		{
			name:     "set-car! is visible through aliases",
			text:     "(define a '(1 2)) (define b a) (set-car! b 9) a",
			expected: "(9 2)",
		},
		{
			name:     "set-cdr! is visible through shared tails",
			text:     "(define tail '(2 3)) (define a (cons 1 tail)) (set-cdr! tail '(4)) a",
			expected: "(1 2 4)",
		},
		{name: "set-car! on nil", text: "(set-car! '() 1)", kind: fail.EmptyList},
		{
			name:     "append! modifies in place",
			text:     "(define a '(1)) (append! a 2 3) a",
			expected: "(1 2 3)",
		},
	})
}

func TestStrings(t *testing.T) {
	check(t, []test{
		{name: "concat", text: `(concat "a" 'b 1)`, expected: `"ab1"`},
		{name: "lower", text: `(lower "AbC")`, expected: `"abc"`},
		{name: "upper", text: `(upper "AbC")`, expected: `"ABC"`},
		{name: "string-length", text: `(string-length "héllo")`, expected: "5"},
		{name: "number->string", text: "(number->string 1.5)", expected: `"1.5"`},
		{name: "string->symbol", text: `(string->symbol "abc")`, expected: "abc"},
		{name: "symbol->string", text: "(symbol->string 'abc)", expected: `"abc"`},
		{name: "upper of number", text: "(upper 1)", kind: fail.Type},
		{name: "escapes", text: `(string-length "a\tb")`, expected: "3"},
	})
}

func TestProcedures(t *testing.T) {
	check(t, []test{
		{name: "apply", text: "(apply + '(1 2 3))", expected: "6"},
		{name: "apply lambda", text: "(apply (lambda (a b) (- a b)) '(5 2))", expected: "3"},
		{name: "apply non-procedure", text: "(apply 1 '())", kind: fail.NotCallable},
		{name: "map", text: "(map (lambda (x) (* x x)) '(1 2 3))", expected: "(1 4 9)"},
		{name: "filter", text: "(filter (lambda (x) (> x 1)) '(1 2 3))", expected: "(2 3)"},
		{name: "reduce", text: "(reduce + 0 '(1 2 3 4))", expected: "10"},
		{name: "map arity", text: "(map (lambda (a b) a) '(1))", kind: fail.Arity},
	})
}

func TestCore(t *testing.T) {
	check(t, []test{
		{name: "eval", text: "(eval '(+ 1 2))", expected: "3"},
		{name: "eval in caller env", text: "(define x 4) (eval 'x)", expected: "4"},
		{name: "not", text: "(not '())", expected: "T"},
		{name: "not true", text: "(not 0)", expected: "F"},
		{name: "match", text: `(match "*.go" "main.go")`, expected: "T"},
		{name: "no match", text: `(match "*.go" "main.c")`, expected: "F"},
		{name: "error", text: `(error "bad" 1)`, kind: fail.User},
		{name: "type-of int", text: "(type-of 1)", expected: "int"},
		{name: "type-of nil", text: "(type-of '())", expected: "nil"},
		{name: "type-of list", text: "(type-of '(1))", expected: "list"},
		{name: "type-of lambda", text: "(type-of (lambda () 1))", expected: "lambda"},
		{name: "type-of builtin", text: "(type-of car)", expected: "builtin"},
	})
}

func TestPrelude(t *testing.T) {
	check(t, []test{
		{name: "cadr", text: "(cadr '(1 2 3))", expected: "2"},
		{name: "cddr", text: "(cddr '(1 2 3))", expected: "(3)"},
		{name: "caar", text: "(caar '((1) 2))", expected: "1"},
		{name: "cdar", text: "(cdar '((1 2) 3))", expected: "(2)"},
		{name: "nil?", text: "(nil? '())", expected: "T"},
		{name: "range", text: "(range 0 4)", expected: "(0 1 2 3)"},
		{name: "empty range", text: "(range 2 2)", expected: "NIL"},
		{name: "foldl", text: "(foldl - 10 '(1 2 3))", expected: "4"},
		{name: "compose", text: "((compose car cdr) '(1 2 3))", expected: "2"},
		{name: "when", text: "(when T 1)", expected: "1"},
		{name: "when false", text: "(when F 1)", expected: "NIL"},
		{name: "unless", text: "(unless F 2)", expected: "2"},
	})
}

func TestOutput(t *testing.T) {
	var b bytes.Buffer

	e, err := engine.New(&b)
	require.NoError(t, err)

	v, err := e.Source("output", `(print "a" 1) (println " b" 'c)`, engine.StopOnParseError)
	require.NoError(t, err)

	assert.Equal(t, "a 1 b c\n", b.String())
	assert.Equal(t, "c", literal.String(v))
}

func TestBuiltinsAreNamed(t *testing.T) {
	for k, fn := range commands.Builtins() {
		assert.NotNil(t, fn, k)
	}

	assert.Contains(t, commands.Builtins(), "car")
	assert.Contains(t, commands.Output(&bytes.Buffer{}), "println")
}
