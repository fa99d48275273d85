/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"bytes"
	"errors"
	"testing"
)

// evalString evaluates src in a fresh global environment and captures the output
func evalString(t *testing.T, src string) (Object, string, error) {
	t.Helper()
	var b bytes.Buffer
	old := Output
	Output = &b
	defer func() { Output = old }()
	result, err := EvalAll("test", src, NewGlobalEnv())
	return result, b.String(), err
}

func mustEval(t *testing.T, src string) (Object, string) {
	t.Helper()
	result, out, err := evalString(t, src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return result, out
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"(+ 1 2)", 3},
		{"(- 5 3)", 2},
		{"(- 3 5)", -2},
		{"(< 1 2)", 1},
		{"(< 2 1)", 0},
		{"(< 1 1)", 0},
		{"(+ (+ 1 2) (- 10 4))", 9},
		{"007", 7},
	}
	for _, c := range cases {
		result, _ := mustEval(t, c.src)
		if result.Int() != c.want {
			t.Errorf("%s = %s, want %d", c.src, result, c.want)
		}
	}
}

func TestDefine(t *testing.T) {
	en := NewGlobalEnv()
	if _, err := EvalAll("test", "(define x 10)", en); err != nil {
		t.Fatal(err)
	}
	result, err := EvalAll("test", "x", en)
	if err != nil {
		t.Fatal(err)
	}
	if result.Int() != 10 {
		t.Fatalf("x = %s", result)
	}
	if v, _ := mustEval(t, "(define y (+ 1 1))"); v.Int() != 2 {
		t.Fatalf("define must return the value, got %s", v)
	}
}

func TestIfEvaluatesOneBranch(t *testing.T) {
	result, out := mustEval(t, "(if (< 1 2) (begin (display 1) 1) (begin (display 2) 2))")
	if result.Int() != 1 || out != "1\n" {
		t.Fatalf("result %s, output %q", result, out)
	}
	result, out = mustEval(t, "(if 0 (display 1) (display 2))")
	if out != "2\n" {
		t.Fatalf("result %s, output %q", result, out)
	}
	// the untaken branch is not even looked up
	if result, _ = mustEval(t, "(if 1 5 undefined-name)"); result.Int() != 5 {
		t.Fatalf("result %s", result)
	}
}

func TestBeginAndDisplay(t *testing.T) {
	result, out := mustEval(t, "(begin (display 1) (display (+ 1 1)) 3)")
	if result.Int() != 3 || out != "1\n2\n" {
		t.Fatalf("result %s, output %q", result, out)
	}
}

func TestCommentIsPrinted(t *testing.T) {
	result, out := mustEval(t, "; hello\n(display 4)\n  ;; bye")
	if !result.IsUnit() || out != "; hello\n4\n  ;; bye\n" {
		t.Fatalf("result %v, output %q", result, out)
	}
}

func TestLambda(t *testing.T) {
	result, _ := mustEval(t, "(define add (lambda (a b) (+ a b)))\n(add 3 4)")
	if result.Int() != 7 {
		t.Fatalf("(add 3 4) = %s", result)
	}
	result, _ = mustEval(t, "((lambda () 9))")
	if result.Int() != 9 {
		t.Fatalf("immediate call = %s", result)
	}
}

func TestRecursionThroughCallerEnvironment(t *testing.T) {
	// sum is not in its own snapshot; the call site supplies it
	result, _ := mustEval(t, `
(define sum (lambda (n) (if (< n 1) 0 (+ n (sum (- n 1))))))
(sum 10)`)
	if result.Int() != 55 {
		t.Fatalf("(sum 10) = %s", result)
	}
}

func TestClosureSnapshotWinsOverCaller(t *testing.T) {
	result, _ := mustEval(t, `
(define y 1)
(define f (lambda () y))
(define y 2)
(f)`)
	if result.Int() != 1 {
		t.Fatalf("(f) = %s, want the captured 1", result)
	}
}

func TestFreeNameResolvesAtCallSite(t *testing.T) {
	// z is unknown when g is created, so each call sees the caller's z
	result, _ := mustEval(t, `
(define g (lambda () z))
(define z 5)
(define h (lambda (z) (g)))
(+ (g) (h 100))`)
	if result.Int() != 105 {
		t.Fatalf("got %s, want 105", result)
	}
}

func TestParameterShadowsCapture(t *testing.T) {
	result, _ := mustEval(t, `
(define a 1)
(define f (lambda (a) (+ a a)))
(f 20)`)
	if result.Int() != 40 {
		t.Fatalf("got %s", result)
	}
}

func TestArgumentsEvaluatedInCaller(t *testing.T) {
	result, _ := mustEval(t, `
(define x 1)
(define f (lambda (x) (lambda (y) (+ x y))))
(define add5 (f 5))
(add5 x)`)
	if result.Int() != 6 {
		t.Fatalf("got %s, want 6", result)
	}
}

func TestClosuresCaptureParameters(t *testing.T) {
	result, _ := mustEval(t, `
(define adder (lambda (n) (lambda (m) (+ n m))))
(define add2 (adder 2))
(define add3 (adder 3))
(+ (add2 10) (add3 10))`)
	if result.Int() != 25 {
		t.Fatalf("got %s", result)
	}
}

func TestDefineInsideBodyIsGlobal(t *testing.T) {
	result, _ := mustEval(t, `
(define f (lambda () (begin (define z 5) (+ z 1))))
(f)
z`)
	if result.Int() != 5 {
		t.Fatalf("got %s", result)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind error
	}{
		{"(1 2", ErrSyntax},
		{")", ErrSyntax},
		{"undefined", ErrUnboundName},
		{"(1 2)", ErrType},
		{"()", ErrType},
		{"(+ (lambda () 1) 2)", ErrType},
		{"(+ 1)", ErrArity},
		{"(display 1 2)", ErrArity},
		{"(if 1 2)", ErrArity},
		{"((lambda (a) a))", ErrArity},
		{"((lambda (a) a) 1 2)", ErrArity},
		{"99999999999999999999", ErrMalformedConstant},
		{"(define 1 2)", ErrSyntax},
		{"(lambda (1) 2)", ErrSyntax},
		{"(lambda x 2)", ErrSyntax},
	}
	for _, c := range cases {
		_, _, err := evalString(t, c.src)
		if !errors.Is(err, c.kind) {
			t.Errorf("%s: expected %v, got %v", c.src, c.kind, err)
		}
	}
}

func TestErrorStopsEvaluation(t *testing.T) {
	_, out, err := evalString(t, "(display 1)\n(display nope)\n(display 3)")
	if err == nil || out != "1\n" {
		t.Fatalf("output %q, error %v", out, err)
	}
	if err.Error() != "unbound name: test:2: nope is not in scope" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestGlobalEnvironmentsAreIndependent(t *testing.T) {
	a := NewGlobalEnv()
	b := NewGlobalEnv()
	if _, err := EvalAll("test", "(define + 1)", a); err != nil {
		t.Fatal(err)
	}
	if result, err := EvalAll("test", "(+ 1 2)", b); err != nil || result.Int() != 3 {
		t.Fatalf("builtins leaked between environments: %v %v", result, err)
	}
}
