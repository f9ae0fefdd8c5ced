// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Process-wide constants cache
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"math"
	"sync"
)

var (
	zero = Int(0)
	one  = Int(1)
	half = Rat(1, 2)
)

// constants holds the decomposed float64 constants. It is filled once and
// read-only afterwards.
type constants struct {
	once sync.Once

	e, pi, ln2, ln10, log2e, log10e, sqrt1_2, sqrt2, i Value
}

var cache constants

func (c *constants) get() *constants {
	c.once.Do(func() {
		c.e = FromFloat(math.E)
		c.pi = FromFloat(math.Pi)
		c.ln2 = FromFloat(math.Ln2)
		c.ln10 = FromFloat(math.Ln10)
		c.log2e = FromFloat(math.Log2E)
		c.log10e = FromFloat(math.Log10E)
		c.sqrt1_2 = FromFloat(math.Sqrt2 / 2)
		c.sqrt2 = FromFloat(math.Sqrt2)
		c.i = Gauss(0, 1, 1, 1)
	})
	return c
}

// E returns the closest float64 approximation of e as an exact rational
func E() Value { return cache.get().e }

// Pi returns the closest float64 approximation of π as an exact rational
func Pi() Value { return cache.get().pi }

// Ln2 returns ln 2
func Ln2() Value { return cache.get().ln2 }

// Ln10 returns ln 10
func Ln10() Value { return cache.get().ln10 }

// Log2E returns log₂ e
func Log2E() Value { return cache.get().log2e }

// Log10E returns log₁₀ e
func Log10E() Value { return cache.get().log10e }

// Sqrt1_2 returns √½
func Sqrt1_2() Value { return cache.get().sqrt1_2 }

// Sqrt2 returns √2
func Sqrt2() Value { return cache.get().sqrt2 }

// I returns the imaginary unit 0 + 1i
func I() Value { return cache.get().i }

// Constants maps the lowercase constant names to their accessors
var Constants = map[string]func() Value{
	"e":       E,
	"pi":      Pi,
	"ln2":     Ln2,
	"ln10":    Ln10,
	"log2e":   Log2E,
	"log10e":  Log10E,
	"sqrt1_2": Sqrt1_2,
	"sqrt2":   Sqrt2,
	"i":       I,
}
