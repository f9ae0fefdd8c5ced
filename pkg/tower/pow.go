// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Exponentiation case table, roots and reductions
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
	"math/big"
	"math/cmplx"
)

// Pow returns x ** y. Cases are tried in order:
//
//  1. y = 0                                  -> 1
//  2. x = 0                                  -> 0
//  3. x, y integers, y > 0                   -> exact integer power
//  4. x, y integers, y < 0                   -> 1 / x^|y|
//  5. x rational, y integer                  -> Rn^y / Rd^y
//  6. x complex, y positive integer          -> square-and-multiply
//  7. x complex, y negative integer          -> reciprocal of case 6
//     (an exponent outside int64 falls through to case 13)
//  8. x > 0, y > 0 rational                  -> NthRoot(x^p, q) for y = p/q
//  9. x < 0, y > 0 rational, q = 2           -> NthRoot(|x|^p, 2)·i
//  10. x < 0, y > 0 rational, q odd          -> -NthRoot(|x|^p, q)
//  11. x < 0, y > 0 rational, q even, q != 2 -> domain error
//  12. x rational, y < 0 rational            -> 1 / x^|y|
//  13. otherwise                             -> exp(y·log(x))
//
// Non-finite operands after case 1 are evaluated in float64.
func Pow(x, y Value) (Value, error) {
	switch {
	case y.IsZero():
		return one, nil
	case x.IsZero():
		return zero, nil
	}

	if !x.IsFinite() || !y.IsFinite() {
		return floatPow(x, y), nil
	}

	yr := y.real()

	switch {
	case x.IsInteger() && y.IsInteger() && yr.n.Sign() > 0:
		return ipow(x, yr.n), nil

	case x.IsInteger() && y.IsInteger():
		return quo(one, ipow(x, new(big.Int).Neg(yr.n))), nil

	case x.IsReal() && y.IsInteger():
		if yr.n.Sign() > 0 {
			return ipow(x, yr.n), nil
		}
		return quo(one, ipow(x, new(big.Int).Neg(yr.n))), nil

	case y.IsInteger() && !yr.n.IsInt64():
		return Exp(Mul(y, Log(x))), nil

	case y.IsInteger() && yr.n.Sign() > 0:
		return ipow(x, yr.n), nil

	case y.IsInteger():
		return quo(one, ipow(x, new(big.Int).Neg(yr.n))), nil

	case x.IsReal() && y.IsReal() && yr.n.Sign() > 0:
		return rationalPow(x, y)

	case x.IsReal() && y.IsReal():
		r, err := Pow(x, Neg(y))
		if err != nil {
			return Value{}, err
		}
		return quo(one, r), nil

	default:
		return Exp(Mul(y, Log(x))), nil
	}
}

// rationalPow covers cases 8 to 11: real x, positive non-integer rational y
func rationalPow(x, y Value) (Value, error) {
	p, q := y.real().n, y.real().d
	if !q.IsInt64() {
		return Exp(Mul(y, Log(x))), nil
	}
	n := q.Int64()

	if x.real().n.Sign() > 0 {
		return NthRoot(ipow(x, p), n)
	}

	ax := Abs(x)
	switch {
	case n == 2:
		r, err := NthRoot(ipow(ax, p), 2)
		if err != nil {
			return Value{}, err
		}
		return Mul(r, I()), nil

	case n%2 == 1:
		r, err := NthRoot(ipow(ax, p), n)
		if err != nil {
			return Value{}, err
		}
		return Neg(r), nil

	default:
		return Value{}, domainError("Pow", x, y)
	}
}

func floatPow(x, y Value) Value {
	if x.IsReal() && y.IsReal() {
		return FromFloat(math.Pow(x.Float64(), y.Float64()))
	}
	return FromComplex(cmplx.Pow(x.Complex128(), y.Complex128()))
}

// Sqrt returns Pow(x, 1/2)
func Sqrt(x Value) Value {
	r, _ := Pow(x, half)
	return r
}

// Cbrt returns Pow(x, 1/3)
func Cbrt(x Value) Value {
	r, _ := Pow(x, Rat(1, 3))
	return r
}

// Hypot returns the square root of the sum of Pow(v, 2). Complex arguments
// are squared, not replaced by their magnitude.
func Hypot(values ...Value) Value {
	sum := zero
	for _, v := range values {
		sum = Add(sum, ipow(v, bigTwo))
	}
	return Sqrt(sum)
}

// Max returns the largest argument under Gt. Complex values compare by
// magnitude; ties keep the earlier argument.
func Max(first Value, rest ...Value) Value {
	m := first
	for _, v := range rest {
		if Gt(v, m) {
			m = v
		}
	}
	return m
}

// Min returns the smallest argument under Lt
func Min(first Value, rest ...Value) Value {
	m := first
	for _, v := range rest {
		if Lt(v, m) {
			m = v
		}
	}
	return m
}
