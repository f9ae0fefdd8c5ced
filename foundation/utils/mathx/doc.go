// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the arbitrary-precision integer helpers
//              and the exact binary64 decomposer underlying the numeric tower.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-09 v0.3.0: Replaced decimal arithmetic with gcd helpers and float decomposition

// Package mathx provides integer utilities and float decomposition for exact arithmetic.
//
// # Integer utilities
//
// GCD, Abs and Sign operate on *big.Int without modifying their arguments. GCD
// runs the Euclidean algorithm as a loop, so operands of any size are safe.
// Reduce brings a numerator/denominator pair into lowest terms with a positive
// denominator.
//
// # Float decomposition
//
// Decompose returns the exact fraction encoded by the bits of a float64:
//
//	num, den := mathx.Decompose(0.1)
//	// num = 3602879701896397, den = 36028797018963968
//
// Non-finite inputs map to sentinel pairs with a zero denominator:
//
//	NaN  -> (0, 0)
//	+Inf -> (1, 0)
//	-Inf -> (-1, 0)
//
// Zero of either sign maps to (0, 1). Subnormal values are decoded without the
// implicit leading bit, so every finite float64 round-trips exactly.
package mathx
