// File: gcd_test.go
// Title: Unit Tests for Integer Utilities
// Description: Tests gcd, sign, abs and fraction reduction, including large
//              operands.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-09
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-09 v0.3.0: Initial test implementation

package mathx

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer literal " + s)
	}
	return n
}

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"both zero", "0", "0", "0"},
		{"zero left", "0", "-12", "12"},
		{"zero right", "15", "0", "15"},
		{"coprime", "17", "5", "1"},
		{"common factor", "84", "36", "12"},
		{"negative operands", "-84", "-36", "12"},
		{"fibonacci worst case", "12586269025", "7778742049", "1"},
		{"large", "340282366920938463463374607431768211456", "18446744073709551616", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := bi(tt.a), bi(tt.b)
			got := GCD(a, b)
			if got.Cmp(bi(tt.want)) != 0 {
				t.Errorf("GCD(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			if a.Cmp(bi(tt.a)) != 0 || b.Cmp(bi(tt.b)) != 0 {
				t.Error("GCD modified its arguments")
			}
		})
	}
}

func TestAbsSign(t *testing.T) {
	tests := []struct {
		in       string
		wantAbs  string
		wantSign int
	}{
		{"-42", "42", -1},
		{"0", "0", 0},
		{"7", "7", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Abs(bi(tt.in)); got.Cmp(bi(tt.wantAbs)) != 0 {
				t.Errorf("Abs(%s) = %s", tt.in, got)
			}
			if got := Sign(bi(tt.in)); got != tt.wantSign {
				t.Errorf("Sign(%s) = %d", tt.in, got)
			}
		})
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name             string
		num, den         string
		wantNum, wantDen string
	}{
		{"already reduced", "1", "3", "1", "3"},
		{"common factor", "6", "8", "3", "4"},
		{"negative denominator", "3", "-9", "-1", "3"},
		{"both negative", "-4", "-2", "2", "1"},
		{"zero numerator", "0", "-17", "0", "1"},
		{"sentinel untouched", "5", "0", "5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, d := Reduce(bi(tt.num), bi(tt.den))
			if n.Cmp(bi(tt.wantNum)) != 0 || d.Cmp(bi(tt.wantDen)) != 0 {
				t.Errorf("Reduce(%s, %s) = %s/%s, want %s/%s", tt.num, tt.den, n, d, tt.wantNum, tt.wantDen)
			}
			if d.Sign() != 0 && !IsReduced(n, d) {
				t.Errorf("IsReduced(%s, %s) = false", n, d)
			}
		})
	}

	if IsReduced(bi("2"), bi("4")) || IsReduced(bi("1"), bi("-2")) || IsReduced(bi("0"), bi("3")) {
		t.Error("IsReduced accepted a non-canonical pair")
	}
}

func BenchmarkGCD(b *testing.B) {
	x := bi("12200160415121876738")
	y := bi("7540113804746346429")
	for i := 0; i < b.N; i++ {
		_ = GCD(x, y)
	}
}
