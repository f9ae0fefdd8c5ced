// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Canonical text rendering and parsing
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/msto63/numtower/foundation/core/errors"
)

// String renders "Rn" for integers, "Rn/Rd" for rationals and
// "Rn/Rd + In/Idi" for Gaussian rationals
func (v Value) String() string {
	re, im := v.real(), v.imag()
	switch v.kind {
	case KindInteger:
		return re.n.String()
	case KindRational:
		return re.n.String() + "/" + re.d.String()
	default:
		return re.n.String() + "/" + re.d.String() + " + " + im.n.String() + "/" + im.d.String() + "i"
	}
}

// FormatFloat renders v through float64 with strconv 'g' formatting. A
// precision of -1 selects the shortest exact representation.
func FormatFloat(v Value, prec int) string {
	re := strconv.FormatFloat(v.real().float(), 'g', prec, 64)
	if v.IsReal() {
		return re
	}
	im := strconv.FormatFloat(v.imag().float(), 'g', prec, 64)
	if !strings.HasPrefix(im, "-") && !strings.HasPrefix(im, "+") {
		im = "+" + im
	}
	return re + im + "i"
}

// MarshalText implements encoding.TextMarshaler using String
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Parse reads the forms produced by String, pure imaginary literals such as
// "3i" or "-1/2i", and decimal literals such as "1.25" or "6.02e23", which
// are converted exactly. "NaN", "Inf", "+Inf" and "-Inf" and fractions with a
// zero denominator yield the non-finite sentinels.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, parseError(s)
	}

	if !strings.HasSuffix(s, "i") {
		re, err := parseComponent(s)
		if err != nil {
			return Value{}, err
		}
		return fromParts(re, zeroFrac), nil
	}

	body := strings.TrimSuffix(s, "i")
	reText, imText, negate := "", body, false
	if idx := strings.LastIndex(body, " + "); idx > 0 {
		reText, imText = body[:idx], body[idx+3:]
	} else if idx := strings.LastIndex(body, " - "); idx > 0 {
		reText, imText, negate = body[:idx], body[idx+3:], true
	}

	re := zeroFrac
	if reText != "" {
		var err error
		if re, err = parseComponent(reText); err != nil {
			return Value{}, err
		}
	}

	var im frac
	switch strings.TrimSpace(imText) {
	case "", "+":
		im = oneFrac
	case "-":
		im = negFrac(oneFrac)
	default:
		var err error
		if im, err = parseComponent(imText); err != nil {
			return Value{}, err
		}
	}
	if negate {
		im = negFrac(im)
	}
	return fromParts(re, im), nil
}

// MustParse is like Parse but panics on malformed input
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func isSentinelLiteral(s string) bool {
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity":
		return true
	}
	return false
}

func parseComponent(s string) (frac, error) {
	s = strings.TrimSpace(s)

	if isSentinelLiteral(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return frac{}, parseError(s)
		}
		return floatFrac(f), nil
	}

	if num, den, found := strings.Cut(s, "/"); found {
		n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
		if !ok {
			return frac{}, parseError(s)
		}
		d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !ok {
			return frac{}, parseError(s)
		}
		if d.Sign() == 0 {
			return sentinelFrac(n), nil
		}
		return newFrac(n, d), nil
	}

	if n, ok := new(big.Int).SetString(s, 10); ok {
		return intFrac(n), nil
	}
	if r, ok := new(big.Rat).SetString(s); ok {
		return newFrac(r.Num(), r.Denom()), nil
	}
	return frac{}, parseError(s)
}

// sentinelFrac returns the sentinel matching the sign of n over zero
func sentinelFrac(n *big.Int) frac {
	return frac{n: big.NewInt(int64(n.Sign())), d: big.NewInt(0)}
}

func parseError(s string) error {
	return errors.FormatError(errors.ModuleTower, "Parse", s, "Rn, Rn/Rd, Rn/Rd + In/Idi or decimal")
}
