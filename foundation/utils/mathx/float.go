// File: float.go
// Title: Exact Float Decomposition
// Description: Converts a binary64 value into the exact fraction encoded by
//              its sign, exponent and mantissa bits.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-09
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-09 v0.3.0: Initial implementation

package mathx

import (
	"math"
	"math/big"
)

const (
	mantissaBits = 52
	exponentBias = 1023
	exponentMask = 0x7ff
	mantissaMask = 1<<mantissaBits - 1
)

// Decompose returns num/den equal to the binary value of f. The pair is
// reduced and den is positive for every finite f. NaN yields (0, 0), +Inf
// (1, 0) and -Inf (-1, 0).
func Decompose(f float64) (num, den *big.Int) {
	switch {
	case math.IsNaN(f):
		return big.NewInt(0), big.NewInt(0)
	case math.IsInf(f, 1):
		return big.NewInt(1), big.NewInt(0)
	case math.IsInf(f, -1):
		return big.NewInt(-1), big.NewInt(0)
	case f == 0:
		return big.NewInt(0), big.NewInt(1)
	}

	bits := math.Float64bits(f)
	negative := bits>>63 != 0
	biased := int(bits>>mantissaBits) & exponentMask
	mantissa := bits & mantissaMask

	var exp int
	if biased == 0 {
		// subnormal: no implicit leading one, fixed exponent
		exp = 1 - exponentBias - mantissaBits
	} else {
		mantissa |= 1 << mantissaBits
		exp = biased - exponentBias - mantissaBits
	}

	num = new(big.Int).SetUint64(mantissa)
	den = big.NewInt(1)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	if negative {
		num.Neg(num)
	}
	return Reduce(num, den)
}

// IsSentinel reports whether den marks a non-finite decomposition
func IsSentinel(den *big.Int) bool {
	return den.Sign() == 0
}

// SentinelFloat maps a sentinel pair back to NaN or the signed infinity
func SentinelFloat(num *big.Int) float64 {
	switch num.Sign() {
	case 1:
		return math.Inf(1)
	case -1:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// Float64 returns num/den rounded to the nearest float64. Sentinel pairs
// map to NaN or the signed infinity.
func Float64(num, den *big.Int) float64 {
	if IsSentinel(den) {
		return SentinelFloat(num)
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}
