// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Tests for compilation and evaluation
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/pkg/tower"
)

func TestCompile_RPN(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "1 2 3 * +"},
		{"(1 + 2) * 3", "1 2 + 3 *"},
		{"1 - 2 - 3", "1 2 - 3 -"},
		{"2 ^ 3 ^ 2", "2 3 2 ^ ^"},
		{"2 ** 3 ** 2", "2 3 2 ** **"},
		{"-2 ^ 2", "2 2 ^ neg"},
		{"2 ^ -1", "2 1 neg ^"},
		{"-x + +y", "x neg y pos +"},
		{"1 + 2 < 4", "1 2 + 4 <"},
		{"7 % 3 * 2", "7 3 % 2 *"},
		{"sqrt(4) + 1", "4 sqrt 1 +"},
		{"atan2(1, x * 2)", "1 x 2 * atan2"},
		{"max(1, 2, 3)", "1 2 3 max@3"},
		{"hypot(3)", "3 hypot@1"},
		{"sin(cos(pi))", "pi cos sin"},
		{"-sqrt(4)", "4 sqrt neg"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, f.String()); diff != "" {
				t.Errorf("RPN mismatch (-want +got):\n%s", diff)
			}
			if f.Source() != tt.src {
				t.Errorf("Source() = %q", f.Source())
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		src  string
		code mdwerror.Code
	}{
		{"", mdwerror.CodeSyntax},
		{"1 +", mdwerror.CodeSyntax},
		{"* 2", mdwerror.CodeSyntax},
		{"(1 + 2", mdwerror.CodeSyntax},
		{"1 + 2)", mdwerror.CodeSyntax},
		{"()", mdwerror.CodeSyntax},
		{"1 2", mdwerror.CodeSyntax},
		{"2 i", mdwerror.CodeSyntax},
		{"2 (3)", mdwerror.CodeSyntax},
		{"1, 2", mdwerror.CodeSyntax},
		{"max(1,)", mdwerror.CodeSyntax},
		{"max((1, 2))", mdwerror.CodeSyntax},
		{"x = 1", mdwerror.CodeSyntax},
		{"sqrt + 1", mdwerror.CodeSyntax},
		{"1 @ 2", mdwerror.CodeSyntax},
		{"frob(1)", mdwerror.CodeUnknownSymbol},
		{"sqrt(1, 2)", mdwerror.CodeArity},
		{"atan2(1)", mdwerror.CodeArity},
		{"max()", mdwerror.CodeArity},
		{"sin()", mdwerror.CodeArity},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err == nil {
				t.Fatalf("Compile(%q) = %v, want error", tt.src, f)
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Compile(%q) code = %v, want %v (%v)", tt.src, got, tt.code, err)
			}
		})
	}
}

func TestEval(t *testing.T) {
	env := Env{"x": tower.Rat(1, 3), "pi": tower.Int(3)}

	tests := []struct {
		src  string
		want tower.Value
	}{
		{"1/3 + 1/6", tower.Rat(1, 2)},
		{"2^-1 + sqrt(4)", tower.Rat(5, 2)},
		{"-2^2", tower.Int(-4)},
		{"2^3^2", tower.Int(512)},
		{"x * 3", tower.Int(1)},
		{"1.25", tower.Rat(5, 4)},
		{"3e-2", tower.Rat(3, 100)},
		{"i * i", tower.Int(-1)},
		{"(1 + 2*i) * (3 + 4*i)", tower.Gauss(-5, 1, 10, 1)},
		{"sqrt(-4)", tower.Gauss(0, 1, 2, 1)},
		{"7 % 3", tower.Int(1)},
		{"-7 % 3", tower.Int(-1)},
		{"1 < 2", tower.Int(1)},
		{"2 <= 1", tower.Int(0)},
		{"1/2 == 2/4", tower.Int(1)},
		{"1 + 1 != 2", tower.Int(0)},
		{"max(1, 5/2, 2)", tower.Rat(5, 2)},
		{"min(3, -1, 2)", tower.Int(-1)},
		{"hypot(3, 4)", tower.Int(5)},
		{"abs(-3/4)", tower.Rat(3, 4)},
		{"floor(-1/2) + ceil(1/2)", tower.Int(0)},
		{"real(conjugate(1 + 2*i))", tower.Int(1)},
		{"imag(conjugate(1 + 2*i))", tower.Int(-2)},
		{"nthroot(16, 2)", tower.Int(4)},
		{"inv(4)", tower.Rat(1, 4)},
		{"pow(4, 1/2)", tower.Int(2)},
		{"pi", tower.Int(3)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src, env)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.src, err)
			}
			if !tower.Eq(got, tt.want) {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestEval_Constants(t *testing.T) {
	got, err := Eval("pi", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !tower.Eq(got, tower.Pi()) {
		t.Errorf("pi = %v, want %v", got, tower.Pi())
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		src  string
		code mdwerror.Code
	}{
		{"y + 1", mdwerror.CodeUnknownSymbol},
		{"1 / 0", mdwerror.CodeDivisionByZero},
		{"1 % 0", mdwerror.CodeDivisionByZero},
		{"inv(0)", mdwerror.CodeDivisionByZero},
		{"atan2(i, 1)", mdwerror.CodeInvalidType},
		{"nthroot(8, 1/2)", mdwerror.CodeInvalidInput},
		{"nthroot(8, 0)", mdwerror.CodeInvalidInput},
		{"nthroot(-4, 2)", mdwerror.CodeDomain},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Eval(tt.src, nil)
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Eval(%q) code = %v, want %v (%v)", tt.src, got, tt.code, err)
			}
		})
	}
}

func TestFormula_Variables(t *testing.T) {
	f := MustCompile("a * x + pi * a - sin(b)")
	if diff := cmp.Diff([]string{"a", "x", "b"}, f.Variables()); diff != "" {
		t.Errorf("Variables() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormula_Reusable(t *testing.T) {
	f := MustCompile("x ^ 2")
	for _, n := range []int64{1, 2, 3} {
		got, err := f.Eval(Env{"x": tower.Int(n)})
		if err != nil {
			t.Fatal(err)
		}
		if !tower.Eq(got, tower.Int(n*n)) {
			t.Errorf("x=%d: got %v", n, got)
		}
	}
}

func TestFunctions(t *testing.T) {
	names := Functions()
	for _, want := range []string{"abs", "acosh", "hypot", "max", "nthroot", "radians", "sqrt", "tanh"} {
		if _, ok := LookupFunction(want); !ok {
			t.Errorf("LookupFunction(%q) not found", want)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Functions() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	if op, ok := LookupOperator("^"); !ok || op.Assoc != AssocRight || op.Priority != PriorityPower {
		t.Errorf("LookupOperator(^) = %+v, %v", op, ok)
	}
	if op, _ := LookupFunction("max"); !op.IsFunction() || op.Arity.Right != Variadic {
		t.Errorf("max = %+v", op)
	}
}
