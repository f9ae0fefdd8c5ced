// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Expression language over tower values
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

// Package formula compiles infix expressions to reverse-Polish programs and
// evaluates them with exact tower arithmetic.
//
//	f, _ := formula.Compile("2^-1 + sqrt(4)")
//	fmt.Println(f)          // 2 1 neg ^ 4 sqrt +
//	v, _ := f.Eval(nil)
//	fmt.Println(v)          // 5/2
//
// Priorities, from loosest to tightest: comparisons, + -, * / %, prefix - +,
// ^ and ** (right associative), function calls. Comparisons yield the integers
// 1 and 0. Every engine function is available by its lowercase name; max, min
// and hypot take any positive number of arguments. The constants e, pi, ln2,
// ln10, log2e, log10e, sqrt1_2, sqrt2 and i resolve when no variable of the
// same name is bound. There is no implicit multiplication, so 2i is written
// 2*i.
//
// A Session adds assignment ("x = 1/3") and the ans variable.
package formula
