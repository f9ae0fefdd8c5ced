// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Operator and function table
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"sort"

	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/tower"
)

// Associativity decides how operators of equal priority group
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Variadic in Arity.Right accepts one or more arguments
const Variadic = -1

// Operator priorities; higher binds tighter
const (
	PriorityCompare  = 1
	PriorityAdditive = 2
	PriorityProduct  = 3
	PriorityUnary    = 4
	PriorityPower    = 5
	PriorityCall     = 6
)

// Arity counts operands left and right of an operator. Prefix operators and
// functions have Left 0.
type Arity struct {
	Left  int
	Right int
}

// Func applies an operator to its operands in source order
type Func func(args []tower.Value) (tower.Value, error)

// Operator is one entry of the operator table
type Operator struct {
	Name     string
	Priority int
	Arity    Arity
	Assoc    Associativity
	Func     Func
}

// IsFunction reports whether the operator is applied with call syntax
func (o *Operator) IsFunction() bool {
	return o.Priority == PriorityCall
}

// accepts reports whether argc arguments satisfy the operator's arity
func (o *Operator) accepts(argc int) bool {
	if o.Arity.Right == Variadic {
		return argc >= 1
	}
	return argc == o.Arity.Right
}

var (
	binaryOps = map[string]*Operator{}
	prefixOps = map[string]*Operator{}
	functions = map[string]*Operator{}
)

func init() {
	for _, op := range []*Operator{
		binary("+", PriorityAdditive, AssocLeft, exact2(tower.Add)),
		binary("-", PriorityAdditive, AssocLeft, exact2(tower.Sub)),
		binary("*", PriorityProduct, AssocLeft, exact2(tower.Mul)),
		binary("/", PriorityProduct, AssocLeft, call2(tower.Div)),
		binary("%", PriorityProduct, AssocLeft, call2(tower.Mod)),
		binary("^", PriorityPower, AssocRight, call2(tower.Pow)),
		binary("**", PriorityPower, AssocRight, call2(tower.Pow)),
		binary("==", PriorityCompare, AssocLeft, predicate(tower.Eq)),
		binary("!=", PriorityCompare, AssocLeft, predicate(tower.Ne)),
		binary("<", PriorityCompare, AssocLeft, predicate(tower.Lt)),
		binary("<=", PriorityCompare, AssocLeft, predicate(tower.Le)),
		binary(">", PriorityCompare, AssocLeft, predicate(tower.Gt)),
		binary(">=", PriorityCompare, AssocLeft, predicate(tower.Ge)),
	} {
		binaryOps[op.Name] = op
	}

	prefixOps["-"] = &Operator{Name: "neg", Priority: PriorityUnary, Arity: Arity{Right: 1}, Assoc: AssocRight, Func: wrap1(tower.Neg)}
	prefixOps["+"] = &Operator{Name: "pos", Priority: PriorityUnary, Arity: Arity{Right: 1}, Assoc: AssocRight,
		Func: func(args []tower.Value) (tower.Value, error) { return args[0], nil }}

	unary := map[string]func(tower.Value) tower.Value{
		"abs": tower.Abs, "sign": tower.Sign,
		"ceil": tower.Ceil, "floor": tower.Floor, "round": tower.Round, "trunc": tower.Trunc,
		"sqrt": tower.Sqrt, "cbrt": tower.Cbrt,
		"exp": tower.Exp, "expm1": tower.Expm1,
		"log": tower.Log, "log1p": tower.Log1p, "log10": tower.Log10, "log2": tower.Log2,
		"sin": tower.Sin, "cos": tower.Cos, "tan": tower.Tan,
		"asin": tower.Asin, "acos": tower.Acos, "atan": tower.Atan,
		"sinh": tower.Sinh, "cosh": tower.Cosh, "tanh": tower.Tanh,
		"asinh": tower.Asinh, "acosh": tower.Acosh, "atanh": tower.Atanh,
		"arg": tower.Arg, "phase": tower.Phase,
		"degrees": tower.Degrees, "radians": tower.Radians,
		"real": tower.Real, "imag": tower.Imag, "conjugate": tower.Conjugate,
		"neg": tower.Neg,
	}
	for name, f := range unary {
		function(name, 1, wrap1(f))
	}

	function("inv", 1, func(args []tower.Value) (tower.Value, error) { return tower.Inv(args[0]) })
	function("add", 2, exact2(tower.Add))
	function("sub", 2, exact2(tower.Sub))
	function("mul", 2, exact2(tower.Mul))
	function("div", 2, call2(tower.Div))
	function("mod", 2, call2(tower.Mod))
	function("pow", 2, call2(tower.Pow))
	function("atan2", 2, call2(tower.Atan2))
	function("orthogonal", 2, exact2(tower.Orthogonal))
	function("eq", 2, predicate(tower.Eq))
	function("ne", 2, predicate(tower.Ne))
	function("lt", 2, predicate(tower.Lt))
	function("le", 2, predicate(tower.Le))
	function("gt", 2, predicate(tower.Gt))
	function("ge", 2, predicate(tower.Ge))
	function("nthroot", 2, nthRoot)
	function("hypot", Variadic, func(args []tower.Value) (tower.Value, error) { return tower.Hypot(args...), nil })
	function("max", Variadic, func(args []tower.Value) (tower.Value, error) { return tower.Max(args[0], args[1:]...), nil })
	function("min", Variadic, func(args []tower.Value) (tower.Value, error) { return tower.Min(args[0], args[1:]...), nil })
}

func binary(name string, priority int, assoc Associativity, f Func) *Operator {
	return &Operator{Name: name, Priority: priority, Arity: Arity{Left: 1, Right: 1}, Assoc: assoc, Func: f}
}

func function(name string, argc int, f Func) {
	functions[name] = &Operator{Name: name, Priority: PriorityCall, Arity: Arity{Right: argc}, Assoc: AssocLeft, Func: f}
}

func wrap1(f func(tower.Value) tower.Value) Func {
	return func(args []tower.Value) (tower.Value, error) { return f(args[0]), nil }
}

func call2(f func(x, y tower.Value) (tower.Value, error)) Func {
	return func(args []tower.Value) (tower.Value, error) { return f(args[0], args[1]) }
}

func exact2(f func(x, y tower.Value) tower.Value) Func {
	return func(args []tower.Value) (tower.Value, error) { return f(args[0], args[1]), nil }
}

// predicate maps a comparison onto the integers 1 and 0
func predicate(f func(x, y tower.Value) bool) Func {
	return func(args []tower.Value) (tower.Value, error) {
		if f(args[0], args[1]) {
			return tower.Int(1), nil
		}
		return tower.Int(0), nil
	}
}

func nthRoot(args []tower.Value) (tower.Value, error) {
	n := args[1]
	if !n.IsInteger() || !n.Num().IsInt64() {
		return tower.Value{}, errors.InputError(errors.ModuleFormula, "nthroot", n.String(), "a positive integer degree")
	}
	return tower.NthRoot(args[0], n.Num().Int64())
}

// LookupFunction returns the function registered under name
func LookupFunction(name string) (*Operator, bool) {
	op, ok := functions[name]
	return op, ok
}

// LookupOperator returns the binary operator spelled symbol
func LookupOperator(symbol string) (*Operator, bool) {
	op, ok := binaryOps[symbol]
	return op, ok
}

// Functions returns the names of all registered functions, sorted
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
