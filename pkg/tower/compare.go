// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Equality and magnitude-based ordering
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

// compare orders reals by value and complex values by magnitude. ok is false
// when a NaN component is involved.
func compare(x, y Value) (int, bool) {
	if x.IsReal() && y.IsReal() {
		return cmpFrac(x.real(), y.real())
	}
	// |x| < |y| iff |x|² < |y|², so the squared norms compare exactly
	return cmpFrac(normSquared(x), normSquared(y))
}

// Eq reports field-wise equality of the canonical forms of x and y
func Eq(x, y Value) bool {
	return x.real().equal(y.real()) && x.imag().equal(y.imag())
}

// Ne reports whether x and y differ in any field
func Ne(x, y Value) bool { return !Eq(x, y) }

// Lt reports x < y
func Lt(x, y Value) bool {
	c, ok := compare(x, y)
	return ok && c < 0
}

// Le reports x <= y
func Le(x, y Value) bool {
	c, ok := compare(x, y)
	return ok && c <= 0
}

// Gt reports x > y
func Gt(x, y Value) bool {
	c, ok := compare(x, y)
	return ok && c > 0
}

// Ge reports x >= y
func Ge(x, y Value) bool {
	c, ok := compare(x, y)
	return ok && c >= 0
}

// Cmp returns -1, 0 or 1. Complex values compare by magnitude and NaN
// compares equal to everything.
func Cmp(x, y Value) int {
	c, _ := compare(x, y)
	return c
}

// Eq reports v == y
func (v Value) Eq(y Value) bool { return Eq(v, y) }

// Ne reports v != y
func (v Value) Ne(y Value) bool { return Ne(v, y) }

// Lt reports v < y
func (v Value) Lt(y Value) bool { return Lt(v, y) }

// Le reports v <= y
func (v Value) Le(y Value) bool { return Le(v, y) }

// Gt reports v > y
func (v Value) Gt(y Value) bool { return Gt(v, y) }

// Ge reports v >= y
func (v Value) Ge(y Value) bool { return Ge(v, y) }

// Cmp compares v and y
func (v Value) Cmp(y Value) int { return Cmp(v, y) }
