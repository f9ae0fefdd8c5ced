// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Value type, constructors and accessors
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/msto63/numtower/foundation/utils/mathx"
)

// Kind is the tightest tower member a Value belongs to
type Kind int

const (
	// KindInteger is a Value with zero imaginary part and denominator 1
	KindInteger Kind = iota
	// KindRational is a Value with zero imaginary part
	KindRational
	// KindGaussian is a Value with a non-zero imaginary part
	KindGaussian
)

// String returns the lowercase kind name
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// Value is an immutable Gaussian rational. The zero Value is the integer 0.
type Value struct {
	re, im frac
	kind   Kind
}

// frac is one reduced component. d == 0 marks a non-finite sentinel.
type frac struct {
	n, d *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)

	zeroFrac = frac{n: bigZero, d: bigOne}
	oneFrac  = frac{n: bigOne, d: bigOne}
)

func newFrac(n, d *big.Int) frac {
	rn, rd := mathx.Reduce(n, d)
	return frac{n: rn, d: rd}
}

func intFrac(n *big.Int) frac {
	return frac{n: new(big.Int).Set(n), d: bigOne}
}

func floatFrac(f float64) frac {
	n, d := mathx.Decompose(f)
	return frac{n: n, d: d}
}

func (f frac) finite() bool { return f.d.Sign() != 0 }

func (f frac) isZero() bool { return f.n.Sign() == 0 && f.d.Sign() != 0 }

func (f frac) isInt() bool { return f.d.Cmp(bigOne) == 0 }

func (f frac) float() float64 { return mathx.Float64(f.n, f.d) }

func (f frac) equal(g frac) bool { return f.n.Cmp(g.n) == 0 && f.d.Cmp(g.d) == 0 }

func (v Value) real() frac {
	if v.re.n == nil {
		return zeroFrac
	}
	return v.re
}

func (v Value) imag() frac {
	if v.im.n == nil {
		return zeroFrac
	}
	return v.im
}

// NewInteger returns n as an Integer
func NewInteger(n *big.Int) Value {
	return Value{re: intFrac(n), im: zeroFrac, kind: KindInteger}
}

// NewRational returns num/den narrowed to an Integer when den divides num
func NewRational(num, den *big.Int) (Value, error) {
	if den.Sign() == 0 {
		return Value{}, divisionByZero("NewRational")
	}
	return fromParts(newFrac(num, den), zeroFrac), nil
}

// NewGaussian returns rn/rd + (in/id)·i narrowed to the tightest kind
func NewGaussian(rn, rd, in, id *big.Int) (Value, error) {
	if rd.Sign() == 0 || id.Sign() == 0 {
		return Value{}, divisionByZero("NewGaussian")
	}
	return fromParts(newFrac(rn, rd), newFrac(in, id)), nil
}

// Int returns n as an Integer
func Int(n int64) Value {
	return NewInteger(big.NewInt(n))
}

// Rat returns num/den. It panics if den is zero.
func Rat(num, den int64) Value {
	v, err := NewRational(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return v
}

// Gauss returns rn/rd + (in/id)·i. It panics if a denominator is zero.
func Gauss(rn, rd, in, id int64) Value {
	v, err := NewGaussian(big.NewInt(rn), big.NewInt(rd), big.NewInt(in), big.NewInt(id))
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt returns any Go integer as an Integer
func FromInt[T constraints.Integer](n T) Value {
	if n < 0 {
		return NewInteger(big.NewInt(int64(n)))
	}
	return NewInteger(new(big.Int).SetUint64(uint64(n)))
}

// FromFloat returns the exact value of f's bits. NaN and infinities become
// the sentinel components 0/0, 1/0 and -1/0.
func FromFloat(f float64) Value {
	return fromParts(floatFrac(f), zeroFrac)
}

// FromComplex decomposes both parts of c
func FromComplex(c complex128) Value {
	return fromParts(floatFrac(real(c)), floatFrac(imag(c)))
}

// FromRat returns r as a Rational or Integer
func FromRat(r *big.Rat) Value {
	return fromParts(newFrac(r.Num(), r.Denom()), zeroFrac)
}

// Kind returns the tightest tower member of v
func (v Value) Kind() Kind { return v.kind }

// IsInteger reports whether v is an Integer
func (v Value) IsInteger() bool { return v.kind == KindInteger }

// IsRational reports whether v is a Rational that is not an Integer
func (v Value) IsRational() bool { return v.kind == KindRational }

// IsReal reports whether the imaginary part of v is zero
func (v Value) IsReal() bool { return v.kind != KindGaussian }

// IsGaussian reports whether v has a non-zero imaginary part
func (v Value) IsGaussian() bool { return v.kind == KindGaussian }

// IsFinite reports whether neither component is a non-finite sentinel
func (v Value) IsFinite() bool { return v.real().finite() && v.imag().finite() }

// IsZero reports whether v is exactly zero
func (v Value) IsZero() bool { return v.real().isZero() && v.imag().isZero() }

// Real returns the real part of v
func (v Value) Real() Value { return Real(v) }

// Imag returns the imaginary part of v as a real Value
func (v Value) Imag() Value { return Imag(v) }

// Conjugate returns the complex conjugate of v
func (v Value) Conjugate() Value { return Conjugate(v) }

// Num returns a copy of the real numerator
func (v Value) Num() *big.Int { return new(big.Int).Set(v.real().n) }

// Denom returns a copy of the real denominator
func (v Value) Denom() *big.Int { return new(big.Int).Set(v.real().d) }

// ImagNum returns a copy of the imaginary numerator
func (v Value) ImagNum() *big.Int { return new(big.Int).Set(v.imag().n) }

// ImagDenom returns a copy of the imaginary denominator
func (v Value) ImagDenom() *big.Int { return new(big.Int).Set(v.imag().d) }

// Rat returns the real part as a *big.Rat. ok is false for non-real or
// non-finite values.
func (v Value) Rat() (r *big.Rat, ok bool) {
	re := v.real()
	if !v.IsReal() || !re.finite() {
		return nil, false
	}
	return new(big.Rat).SetFrac(re.n, re.d), true
}

// Float64 returns the real part rounded to the nearest float64
func (v Value) Float64() float64 { return v.real().float() }

// Complex128 returns both parts rounded to float64
func (v Value) Complex128() complex128 {
	return complex(v.real().float(), v.imag().float())
}

// Real returns the real part of x
func Real(x Value) Value { return fromParts(x.real(), zeroFrac) }

// Imag returns the imaginary part of x as a real Value
func Imag(x Value) Value { return fromParts(x.imag(), zeroFrac) }

// Conjugate returns re(x) - im(x)·i
func Conjugate(x Value) Value { return fromParts(x.real(), negFrac(x.imag())) }
