// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Exact integer, rational and Gaussian rational arithmetic
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

// Package tower implements a numeric tower Integer ⊂ Rational ⊂ GaussianRational
// over arbitrary-precision integers.
//
// A Value holds four integers (Rn, Rd, In, Id) for Rn/Rd + (In/Id)·i. Every
// component is kept in lowest terms with a positive denominator, and every
// result is narrowed to the tightest Kind that represents it exactly:
//
//	x := tower.Rat(1, 3)
//	y := tower.Rat(1, 6)
//	fmt.Println(tower.Add(x, y)) // 1/2
//
// Values are immutable. Arithmetic on finite operands is exact. Transcendental
// functions of real arguments are evaluated in float64 and converted back with
// the exact bit decomposition of mathx.Decompose; functions of complex
// arguments are built from Exp and Log identities.
//
// Non-finite float inputs are represented with a zero denominator: NaN is 0/0,
// +Inf is 1/0 and -Inf is -1/0. Any operation touching such a component is
// evaluated in float64 and decomposed again.
//
// Complex values are ordered by magnitude only, so Lt and Gt are both false for
// two values of equal magnitude and different phase.
package tower
