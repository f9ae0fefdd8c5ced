// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Exponential and logarithm families, phase and polar form
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

// real1 evaluates f on the float64 value of a real argument
func real1(x Value, f func(float64) float64) Value {
	return FromFloat(f(x.Float64()))
}

// Exp returns e^x. Complex arguments use e^a·(cos b + i·sin b).
func Exp(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Exp)
	}
	a, b := Real(x), Imag(x)
	return Mul(Exp(a), Add(Cos(b), Mul(I(), Sin(b))))
}

// Expm1 returns e^x - 1
func Expm1(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Expm1)
	}
	return Sub(Exp(x), one)
}

// Log returns the natural logarithm. Real arguments below zero give NaN;
// complex arguments give the principal value log|x| + i·arg(x).
func Log(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Log)
	}
	return Add(Log(Abs(x)), Mul(I(), Arg(x)))
}

// Log1p returns log(1 + x)
func Log1p(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Log1p)
	}
	return Log(Add(one, x))
}

// Log10 returns the decimal logarithm
func Log10(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Log10)
	}
	return quo(Log(x), Ln10())
}

// Log2 returns the binary logarithm
func Log2(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Log2)
	}
	return quo(Log(x), Ln2())
}

// Arg returns atan2(im, re) in (-π, π]
func Arg(x Value) Value {
	return FromFloat(math.Atan2(x.imag().float(), x.real().float()))
}

// Phase is a synonym of Arg
func Phase(x Value) Value { return Arg(x) }

// Polar returns the magnitude and phase of x
func Polar(x Value) (abs, phase Value) {
	return Abs(x), Phase(x)
}

// Orthogonal is the inverse of Polar: abs·cos(amp) + abs·i·sin(amp)
func Orthogonal(abs, amp Value) Value {
	return Add(Mul(abs, Cos(amp)), Mul(Mul(abs, I()), Sin(amp)))
}

// Degrees converts radians to degrees
func Degrees(x Value) Value {
	return Mul(x, quo(Int(180), Pi()))
}

// Radians converts degrees to radians
func Radians(x Value) Value {
	return Mul(x, quo(Pi(), Int(180)))
}

// Atan2 returns the angle of the point (x, y). Both operands must be real.
func Atan2(y, x Value) (Value, error) {
	if !y.IsReal() || !x.IsReal() {
		return Value{}, errors.NewErrorBuilder(errors.ModuleTower).
			Operation("Atan2").
			Message("tower.Atan2: operands must be real").
			Code(mdwerror.CodeInvalidType).
			Detail("y", y.String()).
			Detail("x", x.String()).
			Build()
	}
	return FromFloat(math.Atan2(y.Float64(), x.Float64())), nil
}
