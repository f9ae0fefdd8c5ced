// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Trigonometric and hyperbolic functions and their inverses
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
)

var twoI = Gauss(0, 1, 2, 1)

// Sin returns the sine; complex arguments use (e^{iz} - e^{-iz}) / 2i
func Sin(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Sin)
	}
	iz := Mul(I(), x)
	return quo(Sub(Exp(iz), Exp(Neg(iz))), twoI)
}

// Cos returns the cosine; complex arguments use (e^{iz} + e^{-iz}) / 2
func Cos(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Cos)
	}
	iz := Mul(I(), x)
	return quo(Add(Exp(iz), Exp(Neg(iz))), Int(2))
}

// Tan returns the tangent
func Tan(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Tan)
	}
	return quo(Sin(x), Cos(x))
}

// Sinh returns the hyperbolic sine; complex arguments use
// (e^z - e^{-z}) / 2i
func Sinh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Sinh)
	}
	return quo(Sub(Exp(x), Exp(Neg(x))), twoI)
}

// Cosh returns the hyperbolic cosine; complex arguments use
// (e^z + e^{-z}) / 2i
func Cosh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Cosh)
	}
	return quo(Add(Exp(x), Exp(Neg(x))), twoI)
}

// Tanh returns the hyperbolic tangent
func Tanh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Tanh)
	}
	return quo(Sinh(x), Cosh(x))
}

// sqrt1m returns sqrt(1 - x²)
func sqrt1m(x Value) Value {
	return Sqrt(Sub(one, Mul(x, x)))
}

// Asin returns the inverse sine; complex arguments use
// -i·log(iz + sqrt(1 - z²))
func Asin(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Asin)
	}
	return Mul(Neg(I()), Log(Add(Mul(I(), x), sqrt1m(x))))
}

// Acos returns the inverse cosine; complex arguments use
// -i·log(z + i·sqrt(1 - z²))
func Acos(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Acos)
	}
	return Mul(Neg(I()), Log(Add(x, Mul(I(), sqrt1m(x)))))
}

// Atan returns the inverse tangent; complex arguments use
// (i/2)·log((i + z) / (i - z))
func Atan(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Atan)
	}
	return Mul(quo(I(), Int(2)), Log(quo(Add(I(), x), Sub(I(), x))))
}

// Asinh returns the inverse hyperbolic sine, log(z + sqrt(z² + 1))
func Asinh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Asinh)
	}
	return Log(Add(x, Sqrt(Add(Mul(x, x), one))))
}

// Acosh returns the inverse hyperbolic cosine, log(z + sqrt(z² - 1))
func Acosh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Acosh)
	}
	return Log(Add(x, Sqrt(Sub(Mul(x, x), one))))
}

// Atanh returns the inverse hyperbolic tangent, ½·log((1 + z) / (1 - z))
func Atanh(x Value) Value {
	if x.IsReal() {
		return real1(x, math.Atanh)
	}
	return Mul(half, Log(quo(Add(one, x), Sub(one, x))))
}
