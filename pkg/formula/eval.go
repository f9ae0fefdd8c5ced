// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Stack evaluation of compiled formulas
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/tower"
)

// Env binds variable names to values. Variables shadow constants.
type Env map[string]tower.Value

// Lookup resolves name against the environment, then the constants
func (e Env) Lookup(name string) (tower.Value, bool) {
	if v, ok := e[name]; ok {
		return v, true
	}
	if c, ok := tower.Constants[name]; ok {
		return c(), true
	}
	return tower.Value{}, false
}

// Eval runs the formula against env, which may be nil
func (f *Formula) Eval(env Env) (tower.Value, error) {
	stack := make([]tower.Value, 0, len(f.steps))

	for _, s := range f.steps {
		switch s.kind {
		case stepPush:
			stack = append(stack, s.value)

		case stepLoad:
			v, ok := env.Lookup(s.text)
			if !ok {
				return tower.Value{}, unknownSymbol("Eval", s.text)
			}
			stack = append(stack, v)

		case stepApply:
			if len(stack) < s.argc {
				return tower.Value{}, errors.Internal(errors.ModuleFormula, "Eval", "operand stack underflow at "+s.String())
			}
			base := len(stack) - s.argc
			args := make([]tower.Value, s.argc)
			copy(args, stack[base:])
			v, err := s.op.Func(args)
			if err != nil {
				return tower.Value{}, err
			}
			stack = append(stack[:base], v)
		}
	}

	if len(stack) != 1 {
		return tower.Value{}, errors.Internal(errors.ModuleFormula, "Eval", "unbalanced operand stack")
	}
	return stack[0], nil
}

// Eval compiles and evaluates src in one step
func Eval(src string, env Env) (tower.Value, error) {
	f, err := Compile(src)
	if err != nil {
		return tower.Value{}, err
	}
	return f.Eval(env)
}
