// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Exact arithmetic on components and tower values
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
	"math/big"
)

// Component arithmetic. Sentinel operands are evaluated in float64.

func addFrac(a, b frac) frac {
	if !a.finite() || !b.finite() {
		return floatFrac(a.float() + b.float())
	}
	n := new(big.Int).Mul(a.n, b.d)
	n.Add(n, new(big.Int).Mul(b.n, a.d))
	return newFrac(n, new(big.Int).Mul(a.d, b.d))
}

func negFrac(a frac) frac {
	return frac{n: new(big.Int).Neg(a.n), d: a.d}
}

func subFrac(a, b frac) frac {
	return addFrac(a, negFrac(b))
}

func mulFrac(a, b frac) frac {
	if !a.finite() || !b.finite() {
		return floatFrac(a.float() * b.float())
	}
	return newFrac(new(big.Int).Mul(a.n, b.n), new(big.Int).Mul(a.d, b.d))
}

// quoFrac divides a by b. A zero divisor yields the float64 result.
func quoFrac(a, b frac) frac {
	if !a.finite() || !b.finite() || b.isZero() {
		return floatFrac(a.float() / b.float())
	}
	return newFrac(new(big.Int).Mul(a.n, b.d), new(big.Int).Mul(a.d, b.n))
}

func absFrac(a frac) frac {
	return frac{n: new(big.Int).Abs(a.n), d: a.d}
}

// truncFrac rounds toward zero
func truncFrac(a frac) frac {
	if !a.finite() {
		return a
	}
	return frac{n: new(big.Int).Quo(a.n, a.d), d: bigOne}
}

// floorFrac rounds toward negative infinity
func floorFrac(a frac) frac {
	if !a.finite() {
		return a
	}
	// Euclidean division equals floor for a positive divisor
	return frac{n: new(big.Int).Div(a.n, a.d), d: bigOne}
}

func ceilFrac(a frac) frac {
	return negFrac(floorFrac(negFrac(a)))
}

// roundFrac rounds half toward positive infinity
func roundFrac(a frac) frac {
	if !a.finite() {
		return a
	}
	n := new(big.Int).Lsh(a.n, 1)
	n.Add(n, a.d)
	return frac{n: n.Div(n, new(big.Int).Lsh(a.d, 1)), d: bigOne}
}

// cmpFrac compares a and b. ok is false when either is NaN.
func cmpFrac(a, b frac) (c int, ok bool) {
	if !a.finite() || !b.finite() {
		fa, fb := a.float(), b.float()
		switch {
		case math.IsNaN(fa) || math.IsNaN(fb):
			return 0, false
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}
	l := new(big.Int).Mul(a.n, b.d)
	r := new(big.Int).Mul(b.n, a.d)
	return l.Cmp(r), true
}

// normSquared returns re² + im², exact for finite values
func normSquared(x Value) frac {
	re, im := x.real(), x.imag()
	return addFrac(mulFrac(re, re), mulFrac(im, im))
}

// Add returns x + y
func Add(x, y Value) Value {
	return fromParts(addFrac(x.real(), y.real()), addFrac(x.imag(), y.imag()))
}

// Sub returns x - y
func Sub(x, y Value) Value {
	return fromParts(subFrac(x.real(), y.real()), subFrac(x.imag(), y.imag()))
}

// Mul returns x · y
func Mul(x, y Value) Value {
	if x.IsReal() && y.IsReal() {
		return fromParts(mulFrac(x.real(), y.real()), zeroFrac)
	}
	a, b := x.real(), x.imag()
	c, d := y.real(), y.imag()
	return fromParts(
		subFrac(mulFrac(a, c), mulFrac(b, d)),
		addFrac(mulFrac(a, d), mulFrac(b, c)),
	)
}

// Div returns x / y. Division by an exact zero is an error.
func Div(x, y Value) (Value, error) {
	if y.IsZero() {
		return Value{}, divisionByZero("Div")
	}
	return quo(x, y), nil
}

// Quo is an alias of Div
func Quo(x, y Value) (Value, error) {
	return Div(x, y)
}

// quo divides without the zero check; a zero divisor yields sentinels
func quo(x, y Value) Value {
	if x.IsReal() && y.IsReal() {
		return fromParts(quoFrac(x.real(), y.real()), zeroFrac)
	}
	a, b := x.real(), x.imag()
	c, d := y.real(), y.imag()
	den := normSquared(y)
	return fromParts(
		quoFrac(addFrac(mulFrac(a, c), mulFrac(b, d)), den),
		quoFrac(subFrac(mulFrac(b, c), mulFrac(a, d)), den),
	)
}

// Neg returns -x
func Neg(x Value) Value {
	return fromParts(negFrac(x.real()), negFrac(x.imag()))
}

// Inv returns 1 / x
func Inv(x Value) (Value, error) {
	if x.IsZero() {
		return Value{}, divisionByZero("Inv")
	}
	return quo(one, x), nil
}

// Mod returns the remainder of x / y. For reals the result carries the sign
// of x. Complex operands use the principal value of
// (y/2πi)·log(exp((2π/y)·i·x)).
func Mod(x, y Value) (Value, error) {
	if y.IsZero() {
		return Value{}, divisionByZero("Mod")
	}

	if !x.IsReal() || !y.IsReal() {
		twoPi := Mul(Int(2), Pi())
		t := Mul(quo(twoPi, y), Mul(I(), x))
		return Mul(quo(y, Mul(twoPi, I())), Log(Exp(t))), nil
	}

	a, b := x.real(), y.real()
	if !a.finite() || !b.finite() {
		return fromParts(floatFrac(math.Mod(a.float(), b.float())), zeroFrac), nil
	}
	if a.n.Sign() >= 0 && b.n.Sign() >= 0 {
		return fromParts(remFrac(a, b), zeroFrac), nil
	}
	r := remFrac(absFrac(a), absFrac(b))
	if a.n.Sign() < 0 {
		r = negFrac(r)
	}
	return fromParts(r, zeroFrac), nil
}

// remFrac returns a - b·trunc(a/b)
func remFrac(a, b frac) frac {
	return subFrac(a, mulFrac(b, truncFrac(quoFrac(a, b))))
}

// Add returns v + y
func (v Value) Add(y Value) Value { return Add(v, y) }

// Sub returns v - y
func (v Value) Sub(y Value) Value { return Sub(v, y) }

// Mul returns v · y
func (v Value) Mul(y Value) Value { return Mul(v, y) }

// Div returns v / y
func (v Value) Div(y Value) (Value, error) { return Div(v, y) }

// Mod returns v mod y
func (v Value) Mod(y Value) (Value, error) { return Mod(v, y) }

// Pow returns v ** y
func (v Value) Pow(y Value) (Value, error) { return Pow(v, y) }

// Neg returns -v
func (v Value) Neg() Value { return Neg(v) }

// Inv returns 1 / v
func (v Value) Inv() (Value, error) { return Inv(v) }
