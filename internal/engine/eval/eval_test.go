// Released under an MIT license. See LICENSE.

package eval_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mg138/lisp/internal/common/fail"
	"github.com/Mg138/lisp/internal/common/interface/cell"
	"github.com/Mg138/lisp/internal/common/interface/literal"
	"github.com/Mg138/lisp/internal/common/type/builtin"
	"github.com/Mg138/lisp/internal/common/type/env"
	"github.com/Mg138/lisp/internal/common/type/lambda"
	"github.com/Mg138/lisp/internal/common/type/list"
	"github.com/Mg138/lisp/internal/common/type/num"
	"github.com/Mg138/lisp/internal/common/type/str"
	"github.com/Mg138/lisp/internal/engine/eval"
	"github.com/Mg138/lisp/internal/reader"
)

func setup() *env.T {
	e := env.New(nil)

	arithmetic := func(identity int64, op func(a, b int64) int64) builtin.Func {
		return func(_ *env.T, args []cell.I) (cell.I, error) {
			acc := identity
			for _, c := range args {
				acc = op(acc, num.Int64(c))
			}

			return num.NewInt(acc), nil
		}
	}

	e.Define("+", builtin.New("+", arithmetic(0, func(a, b int64) int64 { return a + b })))
	e.Define("*", builtin.New("*", arithmetic(1, func(a, b int64) int64 { return a * b })))
	e.Define("car", builtin.New("car", func(_ *env.T, args []cell.I) (cell.I, error) {
		return list.Car(list.To(args[0]))
	}))
	e.Define("list", builtin.New("list", func(_ *env.T, args []cell.I) (cell.I, error) {
		return list.New(args...), nil
	}))

	return e
}

func run(t *testing.T, e *env.T, text string) (cell.I, error) {
	t.Helper()

	forms := []cell.I{}

	for c, err := range reader.Parse("test", text) {
		require.NoError(t, err)

		forms = append(forms, c)
	}

	return eval.Block(e, slices.Values(forms))
}

func check(t *testing.T, text, expected string) {
	t.Helper()

	v, err := run(t, setup(), text)
	require.NoError(t, err, text)
	assert.Equal(t, expected, literal.String(v), text)
}

func fails(t *testing.T, text string, k fail.Kind) {
	t.Helper()

	_, err := run(t, setup(), text)
	require.Error(t, err, text)
	assert.ErrorIs(t, err, k, text)
}

func TestSelfEvaluating(t *testing.T) {
	e := setup()

	for _, c := range []cell.I{num.NewInt(1), num.NewFloat(2.5), str.New("s")} {
		v, err := eval.Eval(c, e)
		require.NoError(t, err)
		assert.Same(t, c, v)
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"define then use", "(define x 5) (+ x 3)", "8"},
		{"immediate lambda", "((lambda (n) (* n n)) 4)", "16"},
		{"quote", "(quote (a b c))", "(a b c)"},
		{"quote shorthand", "'(1 (2))", "(1 (2))"},
		{"quote nil", "'()", "NIL"},
		{"empty program", "", "NIL"},
		{"define returns value", "(define x 7)", "7"},
		{"set returns value", "(define x 7) (set! x 9)", "9"},
		{"if true", "(if T 1 2)", "1"},
		{"if nil", "(if '() 1 2)", "2"},
		{"if false", "(if F 1 2)", "2"},
		{"if without else", "(if F 1)", "NIL"},
		{"begin", "(begin 1 2 3)", "3"},
		{"empty begin", "(begin)", "NIL"},
		{"and", "(and 1 2)", "2"},
		{"and short circuit", "(and F (car '()))", "F"},
		{"empty and", "(and)", "T"},
		{"or", "(or F '() 3)", "3"},
		{"or short circuit", "(or 1 (car '()))", "1"},
		{"empty or", "(or)", "F"},
		{"cond", "(cond (F 1) (T 2) (T 3))", "2"},
		{"cond test value", "(cond (5))", "5"},
		{"cond no match", "(cond (F 1))", "NIL"},
		{"sequential let", "(let ((a 1) (b (+ a 1))) (* a b))", "2"},
		{"let scope", "(define a 1) (let ((a 2)) a) a", "1"},
		{"defun", "(defun sq (x) (* x x)) (sq 5)", "25"},
		{"define procedure", "(define (sq x) (* x x)) (sq 6)", "36"},
		{"lambda literal", "(lambda (a b) (+ a b) b)", "(a b) (+ a b) b"},
		{"multiple body forms", "((lambda () 1 2))", "2"},
		{"closure captures env", "(define make (lambda (n) (lambda () n))) ((make 3))", "3"},
		{"closure sees later set", "(define x 1) (define get (lambda () x)) (set! x 2) (get)", "2"},
		{"closure sees later define", "(define get (lambda () y)) (define y 4) (get)", "4"},
		{"fn alias", "((fn (x) x) 1)", "1"},
		{"set alias", "(define x 1) (set x 2) x", "2"},
		{"set from inner scope", "(define x 1) ((lambda () (set! x 5))) x", "5"},
		{"nested closures", "(define adder (lambda (a) (lambda (b) (+ a b)))) ((adder 2) 3)", "5"},
		{
			"macro",
			"(defmacro twice (x) (list 'begin x x)) (define n 0) (twice (set! n (+ n 1))) n",
			"2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			check(t, test.text, test.expected)
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind fail.Kind
	}{
		{"car of nil", "(car (quote ()))", fail.EmptyList},
		{"nil as code", "()", fail.EmptyList},
		{"not callable", "(1 2)", fail.NotCallable},
		{"string not callable", `("f")`, fail.NotCallable},
		{"unbound symbol", "undefined", fail.Unbound},
		{"unbound operator", "(undefined 1)", fail.Unbound},
		{"set unbound", "(set! undefined 1)", fail.Unbound},
		{"too few arguments", "((lambda (a b) a) 1)", fail.Arity},
		{"too many arguments", "((lambda (a b) a) 1 2 3)", fail.Arity},
		{"if without arguments", "(if)", fail.Malformed},
		{"if with too many arguments", "(if 1 2 3 4)", fail.Malformed},
		{"define non-symbol", "(define 1 2)", fail.Malformed},
		{"define without value", "(define x)", fail.Malformed},
		{"define without name", "(define)", fail.Malformed},
		{"lambda without parameters", "(lambda x x)", fail.Malformed},
		{"lambda with bad parameter", "(lambda (1) 1)", fail.Malformed},
		{"lambda without body", "(lambda (x))", fail.Malformed},
		{"defun without body", "(defun f (x))", fail.Malformed},
		{"defmacro without body", "(defmacro m (x))", fail.Malformed},
		{"define procedure without body", "(define (f x))", fail.Malformed},
		{"let without bindings", "(let x)", fail.Malformed},
		{"let with bad binding", "(let ((1 2)) 1)", fail.Malformed},
		{"quote without argument", "(quote)", fail.Malformed},
		{"quote with two arguments", "(quote a b)", fail.Malformed},
		{"set non-symbol", "(set! 1 2)", fail.Malformed},
		{"cond with bad clause", "(cond 1)", fail.Malformed},
		{"defun without name", "(defun (x) x)", fail.Malformed},
		{"error in argument", "(+ 1 (car '()))", fail.EmptyList},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fails(t, test.text, test.kind)
		})
	}
}

func TestArity(t *testing.T) {
	e := setup()

	_, err := run(t, e, "(define f (lambda (a b) a))")
	require.NoError(t, err)

	_, err = run(t, e, "(f 1)")
	assert.ErrorIs(t, err, fail.Arity)

	v, err := run(t, e, "(f 1 2)")
	require.NoError(t, err)
	assert.Equal(t, num.NewInt(1), v)

	_, err = run(t, e, "(f 1 2 3)")
	assert.ErrorIs(t, err, fail.Arity)
	assert.EqualError(t, err, "arity mismatch: lambda (a b) expected 2 arguments, passed 3")
}

func TestBlockStopsAtFirstError(t *testing.T) {
	e := setup()

	_, err := run(t, e, "(define a 1) (undefined) (define b 2)")
	assert.ErrorIs(t, err, fail.Unbound)

	assert.True(t, e.Has("a"))
	assert.False(t, e.Has("b"))
}

func TestApply(t *testing.T) {
	e := setup()

	v, err := eval.Apply(e.Resolve("+").Get(), []cell.I{num.NewInt(1), num.NewInt(2)}, e)
	require.NoError(t, err)
	assert.Equal(t, num.NewInt(3), v)

	square, err := run(t, e, "(lambda (n) (* n n))")
	require.NoError(t, err)

	v, err = eval.Apply(square, []cell.I{num.NewInt(9)}, e)
	require.NoError(t, err)
	assert.Equal(t, num.NewInt(81), v)

	m := lambda.Macro(e, []string{}, list.New(num.NewInt(1)))

	_, err = eval.Apply(m, nil, e)
	assert.ErrorIs(t, err, fail.NotCallable)

	_, err = eval.Apply(str.New("f"), nil, e)
	assert.ErrorIs(t, err, fail.NotCallable)
}

func TestClosureEnvIsShared(t *testing.T) {
	e := setup()

	_, err := run(t, e, "(define counter 0) (define bump (lambda () (set! counter (+ counter 1))))")
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := run(t, e, "(bump)")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	v, err := e.Lookup("counter")
	require.NoError(t, err)

	// Updates are individually atomic but read-modify-write is not.
	n := num.Int64(v)
	assert.GreaterOrEqual(t, n, int64(1))
	assert.LessOrEqual(t, n, int64(8))
}

func TestSpecials(t *testing.T) {
	for _, s := range eval.Specials() {
		assert.True(t, eval.Special(s), s)
	}

	assert.False(t, eval.Special("car"))
}
