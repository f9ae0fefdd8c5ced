// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Newton iteration nth root
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/msto63/numtower/foundation/core/errors"
)

// MaxRootIterations bounds the Newton iteration of NthRoot
const MaxRootIterations = 65536

// NthRoot approximates the n-th root of m by Newton iteration on
// f(t) = tⁿ - m starting at 1. After every step the fractional part of the
// iterate is rounded through float64, which keeps numerators and
// denominators bounded. Iteration stops when an iterate equals its
// predecessor exactly, when the derivative vanishes, or after
// MaxRootIterations steps. A negative real radicand has a real root only for
// odd n, which is returned as -NthRoot(|m|, n); even n is a domain error.
func NthRoot(m Value, n int64) (Value, error) {
	if n < 1 {
		return Value{}, errors.InputError(errors.ModuleTower, "NthRoot", n, "root index >= 1")
	}
	if !m.IsFinite() {
		if m.IsReal() {
			return FromFloat(math.Pow(m.Float64(), 1/float64(n))), nil
		}
		return FromComplex(cmplx.Pow(m.Complex128(), complex(1/float64(n), 0))), nil
	}
	if m.IsReal() && m.real().n.Sign() < 0 {
		if n%2 == 0 {
			return Value{}, domainError("NthRoot", m, Rat(1, n))
		}
		r, _ := newtonRoot(Neg(m), n, MaxRootIterations)
		return Neg(r), nil
	}
	r, _ := newtonRoot(m, n, MaxRootIterations)
	return r, nil
}

// newtonRoot returns the last iterate and the number of steps taken
func newtonRoot(m Value, n int64, limit int) (Value, int) {
	k := big.NewInt(n)
	km1 := big.NewInt(n - 1)
	order := Int(n)

	x := one
	steps := 0
	for steps < limit {
		fx := Sub(ipow(x, k), m)
		dfx := Mul(order, ipow(x, km1))
		if dfx.IsZero() {
			break
		}

		next := reapproximate(Sub(x, quo(fx, dfx)))
		steps++
		if Eq(next, x) {
			break
		}
		x = next
	}

	if steps == 0 {
		panic(errors.Internal(errors.ModuleTower, "NthRoot", "Newton iteration produced no iterates"))
	}
	return x, steps
}

// reapproximate keeps the integer part of each component and replaces the
// fractional remainder with its float64 value
func reapproximate(x Value) Value {
	return fromParts(reapproximateFrac(x.real()), reapproximateFrac(x.imag()))
}

func reapproximateFrac(c frac) frac {
	if !c.finite() || c.isInt() {
		return c
	}
	whole := truncFrac(c)
	rest := subFrac(c, whole)
	return addFrac(whole, floatFrac(rest.float()))
}

// ipow raises x to a non-negative integer power. Reals use big.Int.Exp on
// numerator and denominator; complex values use square-and-multiply over
// the bits of k.
func ipow(x Value, k *big.Int) Value {
	if k.Sign() == 0 {
		return one
	}

	if x.IsReal() {
		re := x.real()
		if !re.finite() {
			e, _ := new(big.Float).SetInt(k).Float64()
			return FromFloat(math.Pow(re.float(), e))
		}
		return fromParts(frac{
			n: new(big.Int).Exp(re.n, k, nil),
			d: new(big.Int).Exp(re.d, k, nil),
		}, zeroFrac)
	}

	result := one
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = Mul(result, result)
		if k.Bit(i) == 1 {
			result = Mul(result, x)
		}
	}
	return result
}
