// File: gcd.go
// Title: Arbitrary-Precision Integer Utilities
// Description: Iterative Euclidean gcd, absolute value, sign and fraction
//              reduction over *big.Int.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-09
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-09 v0.3.0: Initial implementation

package mathx

import (
	"math/big"
	"sync"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// intPool pools *big.Int scratch values for the Euclidean loop
var intPool = sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getInt() *big.Int {
	i := intPool.Get().(*big.Int)
	i.SetInt64(0)
	return i
}

func putInt(i *big.Int) {
	if i != nil {
		intPool.Put(i)
	}
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := getInt().Abs(b)
	r := getInt()
	defer putInt(y)
	defer putInt(r)

	for y.Sign() != 0 {
		r.Rem(x, y)
		x.Set(y)
		y.Set(r)
	}
	return x
}

// Abs returns |a| as a new value
func Abs(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

// Sign returns -1, 0 or 1
func Sign(a *big.Int) int {
	return a.Sign()
}

// Reduce returns num/den in lowest terms with the sign carried by the
// numerator. A zero numerator yields 0/1. A zero denominator is returned
// unchanged, since it only occurs for the non-finite sentinels.
func Reduce(num, den *big.Int) (*big.Int, *big.Int) {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	if d.Sign() == 0 {
		return n, d
	}
	if n.Sign() == 0 {
		return n, d.Set(one)
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := GCD(n, d)
	if g.Cmp(one) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return n, d
}

// IsReduced reports whether num/den is in canonical form
func IsReduced(num, den *big.Int) bool {
	if den.Sign() <= 0 {
		return false
	}
	if num.Sign() == 0 {
		return den.Cmp(one) == 0
	}
	return GCD(num, den).Cmp(one) == 0
}

// IsZero reports whether a is zero
func IsZero(a *big.Int) bool {
	return a.Cmp(zero) == 0
}
