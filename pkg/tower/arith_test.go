// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Tests for arithmetic, remainder and comparison
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Value
		want Value
	}{
		{"1/3 + 1/6", Add(Rat(1, 3), Rat(1, 6)), Rat(1, 2)},
		{"1/2 - 3/2", Sub(Rat(1, 2), Rat(3, 2)), Int(-1)},
		{"2/3 * 3/4", Mul(Rat(2, 3), Rat(3, 4)), Rat(1, 2)},
		{"complex add", Add(Gauss(1, 2, 1, 1), Gauss(1, 2, -1, 1)), Int(1)},
		{"complex sub", Sub(Gauss(1, 1, 2, 1), Gauss(3, 1, 5, 1)), Gauss(-2, 1, -3, 1)},
		{"complex mul", Mul(Gauss(1, 1, 2, 1), Gauss(3, 1, 4, 1)), Gauss(-5, 1, 10, 1)},
		{"i squared", Mul(I(), I()), Int(-1)},
		{"real times complex", Mul(Int(2), Gauss(1, 2, 1, 3)), Gauss(1, 1, 2, 3)},
		{"neg", Neg(Gauss(1, 2, -1, 3)), Gauss(-1, 2, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Eq(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		x, y Value
		want Value
	}{
		{"rational", Rat(1, 2), Rat(3, 4), Rat(2, 3)},
		{"negative divisor", Int(3), Int(-6), Rat(-1, 2)},
		{"complex", Gauss(1, 1, 2, 1), Gauss(3, 1, 4, 1), Gauss(11, 25, 2, 25)},
		{"by i", Int(1), I(), Gauss(0, 1, -1, 1)},
		{"complex by real", Gauss(2, 1, 4, 1), Int(2), Gauss(1, 1, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Div(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Div(%v, %v) error = %v", tt.x, tt.y, err)
			}
			if !Eq(got, tt.want) {
				t.Errorf("Div(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	for _, zero := range []Value{Int(0), Value{}, Gauss(0, 1, 0, 1)} {
		if _, err := Div(Int(1), zero); !IsDivisionByZero(err) {
			t.Errorf("Div(1, %v) error = %v", zero, err)
		}
		if _, err := Mod(Int(1), zero); !IsDivisionByZero(err) {
			t.Errorf("Mod(1, %v) error = %v", zero, err)
		}
		if _, err := Inv(zero); !IsDivisionByZero(err) {
			t.Errorf("Inv(%v) error = %v", zero, err)
		}
	}

	if q, err := Quo(Int(1), Int(4)); err != nil || !Eq(q, Rat(1, 4)) {
		t.Errorf("Quo(1, 4) = %v, %v", q, err)
	}
	if inv, err := Rat(-2, 3).Inv(); err != nil || !Eq(inv, Rat(-3, 2)) {
		t.Errorf("Inv(-2/3) = %v, %v", inv, err)
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, y Value
		want Value
	}{
		{Int(7), Int(3), Int(1)},
		{Int(-7), Int(3), Int(-1)},
		{Int(7), Int(-3), Int(1)},
		{Int(-7), Int(-3), Int(-1)},
		{Rat(7, 2), Int(1), Rat(1, 2)},
		{Rat(-7, 2), Rat(3, 2), Rat(-1, 2)},
		{Int(6), Int(3), Int(0)},
	}

	for _, tt := range tests {
		t.Run(tt.x.String()+" mod "+tt.y.String(), func(t *testing.T) {
			got, err := Mod(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Mod error = %v", err)
			}
			if !Eq(got, tt.want) {
				t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMod_Complex(t *testing.T) {
	got, err := Gauss(7, 1, 1, 1).Mod(Int(3))
	if err != nil {
		t.Fatalf("Mod error = %v", err)
	}
	closeTo(t, "Mod(7+i, 3)", got, complex(1, 1), 1e-9)
}

func TestFieldLaws(t *testing.T) {
	values := []Value{Int(0), Int(-3), Rat(1, 3), Rat(-5, 7), Rat(22, 7), Int(1 << 40)}

	for _, x := range values {
		for _, y := range values {
			if !Eq(Add(x, y), Add(y, x)) {
				t.Errorf("%v + %v not commutative", x, y)
			}
			if !Eq(Mul(x, y), Mul(y, x)) {
				t.Errorf("%v * %v not commutative", x, y)
			}
			for _, z := range values {
				if !Eq(Add(Add(x, y), z), Add(x, Add(y, z))) {
					t.Errorf("(%v + %v) + %v not associative", x, y, z)
				}
				if !Eq(Mul(x, Add(y, z)), Add(Mul(x, y), Mul(x, z))) {
					t.Errorf("%v * (%v + %v) does not distribute", x, y, z)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name               string
		x, y               Value
		lt, le, gt, ge, eq bool
	}{
		{"1/3 < 1/2", Rat(1, 3), Rat(1, 2), true, true, false, false, false},
		{"equal rationals", Rat(2, 4), Rat(1, 2), false, true, false, true, true},
		{"negative", Int(-2), Rat(-3, 2), true, true, false, false, false},
		{"magnitude 3+4i vs 5", Gauss(3, 1, 4, 1), Int(5), false, true, false, true, false},
		{"equal magnitude, different phase", Gauss(1, 1, 1, 1), Gauss(1, 1, -1, 1), false, true, false, true, false},
		{"magnitude i vs 2", I(), Int(2), true, true, false, false, false},
		{"magnitude -3 vs 2i", Int(-3), Gauss(0, 1, 2, 1), false, false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Lt(tt.y); got != tt.lt {
				t.Errorf("Lt = %v, want %v", got, tt.lt)
			}
			if got := tt.x.Le(tt.y); got != tt.le {
				t.Errorf("Le = %v, want %v", got, tt.le)
			}
			if got := tt.x.Gt(tt.y); got != tt.gt {
				t.Errorf("Gt = %v, want %v", got, tt.gt)
			}
			if got := tt.x.Ge(tt.y); got != tt.ge {
				t.Errorf("Ge = %v, want %v", got, tt.ge)
			}
			if got := tt.x.Eq(tt.y); got != tt.eq {
				t.Errorf("Eq = %v, want %v", got, tt.eq)
			}
			if got := tt.x.Ne(tt.y); got == tt.eq {
				t.Errorf("Ne = %v, want %v", got, !tt.eq)
			}
		})
	}
}

func TestCompare_NaN(t *testing.T) {
	nan := FromFloat(nanValue())
	if Lt(nan, Int(1)) || Gt(nan, Int(1)) || Le(nan, Int(1)) || Ge(nan, Int(1)) {
		t.Error("ordered comparison with NaN must be false")
	}
	if Cmp(nan, Int(1)) != 0 {
		t.Error("Cmp with NaN should be 0")
	}
	if Cmp(Int(1), Int(2)) != -1 || Int(2).Cmp(Int(1)) != 1 {
		t.Error("Cmp mismatch")
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		x                        Value
		ceil, floor, round, trnc Value
	}{
		{Rat(7, 2), Int(4), Int(3), Int(4), Int(3)},
		{Rat(-7, 2), Int(-3), Int(-4), Int(-3), Int(-3)},
		{Rat(5, 3), Int(2), Int(1), Int(2), Int(1)},
		{Rat(-5, 3), Int(-1), Int(-2), Int(-2), Int(-1)},
		{Int(4), Int(4), Int(4), Int(4), Int(4)},
		{Gauss(1, 2, -3, 2), Gauss(1, 1, -1, 1), Gauss(0, 1, -2, 1), Gauss(1, 1, -1, 1), Gauss(0, 1, -1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.x.String(), func(t *testing.T) {
			if got := Ceil(tt.x); !Eq(got, tt.ceil) {
				t.Errorf("Ceil = %v, want %v", got, tt.ceil)
			}
			if got := Floor(tt.x); !Eq(got, tt.floor) {
				t.Errorf("Floor = %v, want %v", got, tt.floor)
			}
			if got := Round(tt.x); !Eq(got, tt.round) {
				t.Errorf("Round = %v, want %v", got, tt.round)
			}
			if got := Trunc(tt.x); !Eq(got, tt.trnc) {
				t.Errorf("Trunc = %v, want %v", got, tt.trnc)
			}
		})
	}
}

func TestAbsSign(t *testing.T) {
	if got := Abs(Rat(-3, 4)); !Eq(got, Rat(3, 4)) {
		t.Errorf("Abs(-3/4) = %v", got)
	}
	closeTo(t, "Abs(1+i)", Abs(Gauss(1, 1, 1, 1)), complex(1.4142135623730951, 0), 1e-15)
	if got := Abs(Gauss(3, 1, 4, 1)); !Eq(got, Int(5)) {
		t.Errorf("Abs(3+4i) = %v, want 5", got)
	}

	for _, tt := range []struct {
		x, want Value
	}{
		{Rat(-1, 9), Int(-1)},
		{Int(0), Int(0)},
		{Rat(22, 7), Int(1)},
		{Gauss(3, 1, 4, 1), Gauss(3, 5, 4, 5)},
	} {
		if got := Sign(tt.x); !Eq(got, tt.want) {
			t.Errorf("Sign(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
