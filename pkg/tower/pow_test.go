// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Tests for the exponentiation case table and Newton roots
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
	"math/big"
	"testing"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

func TestPow_Exact(t *testing.T) {
	tests := []struct {
		name string
		x, y Value
		want Value
	}{
		{"y = 0", Gauss(1, 2, 3, 4), Int(0), Int(1)},
		{"x = 0", Int(0), Rat(1, 2), Int(0)},
		{"x = 0, complex y", Int(0), I(), Int(0)},
		{"2 ** 10", Int(2), Int(10), Int(1024)},
		{"2 ** -3", Int(2), Int(-3), Rat(1, 8)},
		{"(-2/3) ** 3", Rat(-2, 3), Int(3), Rat(-8, 27)},
		{"(2/3) ** -2", Rat(2, 3), Int(-2), Rat(9, 4)},
		{"i ** 2", Gauss(0, 1, 1, 1), Int(2), Int(-1)},
		{"(1+i) ** 3", Gauss(1, 1, 1, 1), Int(3), Gauss(-2, 1, 2, 1)},
		{"(1+i) ** -1", Gauss(1, 1, 1, 1), Int(-1), Gauss(1, 2, -1, 2)},
		{"(1+i) ** 8", Gauss(1, 1, 1, 1), Int(8), Int(16)},
		{"(1+i) ** 13", Gauss(1, 1, 1, 1), Int(13), Gauss(-64, 1, -64, 1)},
		{"(2i) ** -4", Gauss(0, 1, 2, 1), Int(-4), Rat(1, 16)},
		{"9 ** 1/2", Int(9), Rat(1, 2), Int(3)},
		{"(1/4) ** 1/2", Rat(1, 4), Rat(1, 2), Rat(1, 2)},
		{"(-4) ** 1/2", Int(-4), Rat(1, 2), Gauss(0, 1, 2, 1)},
		{"4 ** -1/2", Int(4), Rat(-1, 2), Rat(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pow(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Pow(%v, %v) error = %v", tt.x, tt.y, err)
			}
			if !Eq(got, tt.want) {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPow_Approximate(t *testing.T) {
	tests := []struct {
		name string
		x, y Value
		want complex128
	}{
		{"2 ** 1/2", Int(2), Rat(1, 2), complex(math.Sqrt2, 0)},
		{"27 ** 1/3", Int(27), Rat(1, 3), complex(3, 0)},
		{"(-8) ** 1/3", Int(-8), Rat(1, 3), complex(-2, 0)},
		{"(-8) ** 2/3", Int(-8), Rat(2, 3), complex(-4, 0)},
		{"2 ** 3/2", Int(2), Rat(3, 2), complex(2*math.Sqrt2, 0)},
		{"i ** i", I(), I(), complex(math.Exp(-math.Pi/2), 0)},
		{"2 ** i", Int(2), I(), complex(math.Cos(math.Ln2), math.Sin(math.Ln2))},
		{"(1+i) ** 1/2", Gauss(1, 1, 1, 1), Rat(1, 2), complex(1.0986841134678098, 0.45508986056222733)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pow(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Pow(%v, %v) error = %v", tt.x, tt.y, err)
			}
			closeTo(t, tt.name, got, tt.want, 1e-12)
		})
	}
}

func TestPow_Domain(t *testing.T) {
	for _, y := range []Value{Rat(1, 4), Rat(3, 8), Rat(-1, 4)} {
		_, err := Pow(Int(-16), y)
		if !IsDomain(err) {
			t.Errorf("Pow(-16, %v) error = %v, want domain error", y, err)
		}
	}
}

func TestPow_ExponentBeyondInt64(t *testing.T) {
	k := new(big.Int).Lsh(big.NewInt(1), 64)
	k.Add(k, big.NewInt(2))

	got, err := Pow(Gauss(1, 1, 1, 1), NewInteger(k))
	if err != nil {
		t.Fatalf("Pow error = %v", err)
	}
	if Eq(got, Gauss(0, 1, 2, 1)) {
		t.Errorf("Pow((1+i), 2^64+2) = %v, exponent was truncated", got)
	}
	if got.IsFinite() {
		t.Errorf("Pow((1+i), 2^64+2) = %v, want non-finite", got)
	}
}

func TestPow_NonFinite(t *testing.T) {
	inf := FromFloat(math.Inf(1))
	if got, _ := Pow(inf, Int(0)); !Eq(got, Int(1)) {
		t.Errorf("Pow(Inf, 0) = %v", got)
	}
	if got, _ := Pow(inf, Int(-1)); !Eq(got, Int(0)) {
		t.Errorf("Pow(Inf, -1) = %v", got)
	}
	if got, _ := Pow(Int(2), inf); !math.IsInf(got.Float64(), 1) {
		t.Errorf("Pow(2, Inf) = %v", got)
	}
}

func TestPowIdentities(t *testing.T) {
	for _, x := range []Value{Int(-3), Rat(1, 7), Rat(-5, 2), Gauss(1, 2, 1, 3)} {
		if got, _ := Pow(x, Int(0)); !Eq(got, Int(1)) {
			t.Errorf("Pow(%v, 0) = %v", x, got)
		}
		if got, _ := Pow(Int(0), x); !Eq(got, Int(0)) {
			t.Errorf("Pow(0, %v) = %v", x, got)
		}
	}

	for _, x := range []Value{Int(-3), Int(12), Rat(-1, 4), Rat(9, 16)} {
		sq, _ := Pow(x, Int(2))
		if got := Sqrt(sq); !Eq(got, Abs(x)) {
			t.Errorf("Sqrt(Pow(%v, 2)) = %v, want %v", x, got, Abs(x))
		}
	}

	for _, x := range []Value{Rat(2, 3), Int(5), Rat(7, 1000)} {
		sq, _ := Pow(x, Int(2))
		closeTo(t, "Sqrt(x²) "+x.String(), Sqrt(sq), complex(Abs(x).Float64(), 0), 1e-15)
	}
}

func TestSqrt2Squared(t *testing.T) {
	r, err := Pow(Int(2), Rat(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	sq := Mul(r, r)
	if sq.Float64() != 2 {
		t.Errorf("(2 ** 1/2)² = %v (%v), want 2", sq, sq.Float64())
	}
	if !r.IsRational() {
		t.Errorf("√2 should be a rational approximation, got %v", r.Kind())
	}
}

func TestNthRoot(t *testing.T) {
	tests := []struct {
		m    Value
		n    int64
		want float64
	}{
		{Int(2), 2, math.Sqrt2},
		{Int(1000), 3, 10},
		{Rat(1, 32), 5, 0.5},
		{Int(2), 1, 2},
		{Rat(81, 16), 4, 1.5},
		{Int(-8), 3, -2},
		{Rat(-1, 32), 5, -0.5},
		{Int(-7), 1, -7},
	}

	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			got, err := NthRoot(tt.m, tt.n)
			if err != nil {
				t.Fatalf("NthRoot error = %v", err)
			}
			closeTo(t, "NthRoot", got, complex(tt.want, 0), 1e-14)
		})
	}

	if _, err := NthRoot(Int(4), 0); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("NthRoot(4, 0) error = %v", err)
	}
	if got, _ := NthRoot(FromFloat(math.Inf(1)), 2); !math.IsInf(got.Float64(), 1) {
		t.Errorf("NthRoot(Inf, 2) = %v", got)
	}
}

func TestNthRoot_NegativeEvenIndex(t *testing.T) {
	tests := []struct {
		m Value
		n int64
	}{
		{Int(-1), 2},
		{Int(-4), 2},
		{Int(-16), 4},
		{Rat(-1, 64), 6},
	}

	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			if _, err := NthRoot(tt.m, tt.n); !IsDomain(err) {
				t.Errorf("NthRoot(%v, %d) error = %v, want domain error", tt.m, tt.n, err)
			}
		})
	}
}

func TestNthRoot_StopsOnFixedPoint(t *testing.T) {
	r, steps := newtonRoot(Int(2), 2, MaxRootIterations)
	if steps >= MaxRootIterations {
		t.Fatalf("newtonRoot ran %d steps, want fewer than %d", steps, MaxRootIterations)
	}
	closeTo(t, "newtonRoot(2, 2)", r, complex(math.Sqrt2, 0), 1e-15)

	next, more := newtonRoot(r, 1, MaxRootIterations)
	if more >= MaxRootIterations || !Eq(next, r) {
		t.Errorf("newtonRoot(r, 1) = %v after %d steps, want %v", next, more, r)
	}
}

func TestNthRoot_NoIterates(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*mdwerror.Error)
		if !ok {
			t.Fatalf("recovered %v, want *mdwerror.Error", r)
		}
		if err.Code() != mdwerror.CodeInternal || err.Severity() != mdwerror.SeverityCritical {
			t.Errorf("panic error = %v (%v)", err.Code(), err.Severity())
		}
	}()
	newtonRoot(Int(2), 2, 0)
}

func TestHypotMaxMin(t *testing.T) {
	if got := Hypot(Int(3), Int(4)); !Eq(got, Int(5)) {
		t.Errorf("Hypot(3, 4) = %v", got)
	}
	if got := Hypot(); !Eq(got, Int(0)) {
		t.Errorf("Hypot() = %v", got)
	}
	closeTo(t, "Hypot(1, 1, 1)", Hypot(Int(1), Int(1), Int(1)), complex(math.Sqrt(3), 0), 1e-15)

	if got := Max(Rat(1, 2), Int(-4), Rat(2, 3)); !Eq(got, Rat(2, 3)) {
		t.Errorf("Max = %v", got)
	}
	if got := Min(Rat(1, 2), Int(-4), Rat(2, 3)); !Eq(got, Int(-4)) {
		t.Errorf("Min = %v", got)
	}
	if got := Max(Int(1), Gauss(0, 1, 2, 1)); !Eq(got, Gauss(0, 1, 2, 1)) {
		t.Errorf("Max by magnitude = %v", got)
	}
	if got := Max(Gauss(1, 1, 1, 1), Gauss(1, 1, -1, 1)); !Eq(got, Gauss(1, 1, 1, 1)) {
		t.Errorf("Max tie should keep the first argument, got %v", got)
	}
}

func TestCbrt(t *testing.T) {
	closeTo(t, "Cbrt(-27)", Cbrt(Int(-27)), complex(-3, 0), 1e-14)
	closeTo(t, "Cbrt(2)", Cbrt(Int(2)), complex(math.Cbrt(2), 0), 1e-15)
}
