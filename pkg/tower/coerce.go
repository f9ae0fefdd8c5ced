// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Tower coercion, narrowing raw values to the tightest kind
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math/big"
)

// fromParts is the single narrowing point. Components must already be
// reduced.
func fromParts(re, im frac) Value {
	if im.isZero() {
		im = zeroFrac
		if re.isInt() {
			return Value{re: re, im: im, kind: KindInteger}
		}
		return Value{re: re, im: im, kind: KindRational}
	}
	return Value{re: re, im: im, kind: KindGaussian}
}

// Canonical returns the tightest tower member exactly equal to x. Accepted
// inputs are Value, *Value, *big.Int, big.Int, *big.Rat, every Go integer
// type, float32, float64, complex64 and complex128.
func Canonical(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return fromParts(newFrac(v.real().n, v.real().d), newFrac(v.imag().n, v.imag().d)), nil
	case *Value:
		if v == nil {
			return Value{}, invalidType("Canonical", x)
		}
		return Canonical(*v)
	case *big.Int:
		if v == nil {
			return Value{}, invalidType("Canonical", x)
		}
		return NewInteger(v), nil
	case big.Int:
		return NewInteger(&v), nil
	case *big.Rat:
		if v == nil {
			return Value{}, invalidType("Canonical", x)
		}
		return FromRat(v), nil
	case int:
		return FromInt(v), nil
	case int8:
		return FromInt(v), nil
	case int16:
		return FromInt(v), nil
	case int32:
		return FromInt(v), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return FromInt(v), nil
	case uint8:
		return FromInt(v), nil
	case uint16:
		return FromInt(v), nil
	case uint32:
		return FromInt(v), nil
	case uint64:
		return FromInt(v), nil
	case uintptr:
		return FromInt(v), nil
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case complex64:
		return FromComplex(complex128(v)), nil
	case complex128:
		return FromComplex(v), nil
	default:
		return Value{}, invalidType("Canonical", x)
	}
}

// MustCanonical is like Canonical but panics on unsupported input
func MustCanonical(x any) Value {
	v, err := Canonical(x)
	if err != nil {
		panic(err)
	}
	return v
}
