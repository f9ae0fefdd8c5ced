// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Rounding, absolute value and sign
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

// Ceil rounds each component toward positive infinity
func Ceil(x Value) Value {
	return fromParts(ceilFrac(x.real()), ceilFrac(x.imag()))
}

// Floor rounds each component toward negative infinity
func Floor(x Value) Value {
	return fromParts(floorFrac(x.real()), floorFrac(x.imag()))
}

// Round rounds each component to the nearest integer, halves toward
// positive infinity
func Round(x Value) Value {
	return fromParts(roundFrac(x.real()), roundFrac(x.imag()))
}

// Trunc rounds each component toward zero
func Trunc(x Value) Value {
	return fromParts(truncFrac(x.real()), truncFrac(x.imag()))
}

// Abs returns |x|. Reals are exact; complex magnitudes are Sqrt(re² + im²).
func Abs(x Value) Value {
	if x.IsReal() {
		return fromParts(absFrac(x.real()), zeroFrac)
	}
	return Sqrt(fromParts(normSquared(x), zeroFrac))
}

// Sign returns -1, 0 or 1 for reals and x / |x| for complex values
func Sign(x Value) Value {
	if !x.IsReal() {
		return quo(x, Abs(x))
	}
	re := x.real()
	if !re.finite() && re.n.Sign() == 0 {
		return x
	}
	return Int(int64(re.n.Sign()))
}
