// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Compilation of token streams to reverse-Polish programs
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/tower"
)

type stepKind int

const (
	stepPush stepKind = iota // literal
	stepLoad                 // variable or constant
	stepApply                // operator or function
)

// step is one instruction of a compiled formula
type step struct {
	kind  stepKind
	text  string
	value tower.Value
	op    *Operator
	argc  int
}

func (s step) String() string {
	if s.kind == stepApply && s.op.Arity.Right == Variadic {
		return fmt.Sprintf("%s@%d", s.op.Name, s.argc)
	}
	return s.text
}

// Formula is a compiled expression in reverse-Polish order
type Formula struct {
	source string
	steps  []step
}

// Source returns the text the formula was compiled from
func (f *Formula) Source() string {
	return f.source
}

// String prints the program in reverse-Polish order. Prefix minus and plus
// print as neg and pos; variadic calls carry their argument count as max@3.
func (f *Formula) String() string {
	parts := make([]string, len(f.steps))
	for i, s := range f.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Variables returns the identifiers the formula loads that are not constants,
// in order of first use
func (f *Formula) Variables() []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range f.steps {
		if s.kind != stepLoad || seen[s.text] {
			continue
		}
		if _, ok := tower.Constants[s.text]; ok {
			continue
		}
		seen[s.text] = true
		names = append(names, s.text)
	}
	return names
}

// Compile parses src into a formula
func Compile(src string) (*Formula, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return compileTokens(src, tokens)
}

// MustCompile is like Compile but panics if src does not compile
func MustCompile(src string) *Formula {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

type frameKind int

const (
	frameOp frameKind = iota
	frameParen
	frameCall
)

// frame is an entry of the operator stack
type frame struct {
	kind frameKind
	op   *Operator
	tok  Token
	argc int // completed arguments of a call
}

type compiler struct {
	out   []step
	stack []frame
}

func (c *compiler) top() (frame, bool) {
	if len(c.stack) == 0 {
		return frame{}, false
	}
	return c.stack[len(c.stack)-1], true
}

func (c *compiler) pop() frame {
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return f
}

func (c *compiler) emitOp(f frame) {
	argc := f.op.Arity.Left + f.op.Arity.Right
	c.out = append(c.out, step{kind: stepApply, text: f.op.Name, op: f.op, argc: argc})
}

// unwind moves operators to the output until a parenthesis or call frame
func (c *compiler) unwind() {
	for {
		f, ok := c.top()
		if !ok || f.kind != frameOp {
			return
		}
		c.emitOp(c.pop())
	}
}

// compileTokens runs the shunting-yard algorithm over tokens, which must end
// with EOF
func compileTokens(src string, tokens []Token) (*Formula, error) {
	c := &compiler{}
	expectOperand := true

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case TokenNumber:
			if !expectOperand {
				return nil, syntaxError("Compile", tok, fmt.Sprintf("unexpected number %s", tok.Value))
			}
			v, err := tower.Parse(tok.Value)
			if err != nil {
				return nil, syntaxError("Compile", tok, fmt.Sprintf("malformed number %s", tok.Value))
			}
			c.out = append(c.out, step{kind: stepPush, text: tok.Value, value: v})
			expectOperand = false

		case TokenIdentifier:
			if !expectOperand {
				return nil, syntaxError("Compile", tok, fmt.Sprintf("unexpected identifier %s", tok.Value))
			}
			if tokens[i+1].Type == TokenLeftParen {
				fn, ok := LookupFunction(tok.Value)
				if !ok {
					return nil, unknownSymbol("Compile", tok.Value)
				}
				c.stack = append(c.stack, frame{kind: frameCall, op: fn, tok: tok})
				i++
				continue
			}
			if _, ok := LookupFunction(tok.Value); ok {
				return nil, syntaxError("Compile", tok, fmt.Sprintf("function %s needs an argument list", tok.Value))
			}
			c.out = append(c.out, step{kind: stepLoad, text: tok.Value})
			expectOperand = false

		case TokenOperator:
			if expectOperand {
				op, ok := prefixOps[tok.Value]
				if !ok {
					return nil, syntaxError("Compile", tok, fmt.Sprintf("missing operand before %s", tok.Value))
				}
				c.stack = append(c.stack, frame{kind: frameOp, op: op, tok: tok})
				continue
			}
			op := binaryOps[tok.Value]
			for {
				f, ok := c.top()
				if !ok || f.kind != frameOp {
					break
				}
				if f.op.Priority > op.Priority || f.op.Priority == op.Priority && op.Assoc == AssocLeft {
					c.emitOp(c.pop())
					continue
				}
				break
			}
			c.stack = append(c.stack, frame{kind: frameOp, op: op, tok: tok})
			expectOperand = true

		case TokenLeftParen:
			if !expectOperand {
				return nil, syntaxError("Compile", tok, "unexpected '('")
			}
			c.stack = append(c.stack, frame{kind: frameParen, tok: tok})

		case TokenComma:
			if expectOperand {
				return nil, syntaxError("Compile", tok, "missing argument before ','")
			}
			c.unwind()
			if f, ok := c.top(); !ok || f.kind != frameCall {
				return nil, syntaxError("Compile", tok, "',' outside of a function call")
			}
			c.stack[len(c.stack)-1].argc++
			expectOperand = true

		case TokenRightParen:
			f, ok := c.top()
			emptyCall := expectOperand && ok && f.kind == frameCall && f.argc == 0
			if expectOperand && !emptyCall {
				return nil, syntaxError("Compile", tok, "missing operand before ')'")
			}
			c.unwind()
			f, ok = c.top()
			if !ok {
				return nil, syntaxError("Compile", tok, "unbalanced ')'")
			}
			c.pop()
			if f.kind == frameCall {
				argc := f.argc
				if !emptyCall {
					argc++
				}
				if !f.op.accepts(argc) {
					return nil, arityError(f.op, argc)
				}
				c.out = append(c.out, step{kind: stepApply, text: f.op.Name, op: f.op, argc: argc})
			}
			expectOperand = false

		case TokenAssign:
			return nil, syntaxError("Compile", tok, "assignment is only allowed at the start of a session line")

		case TokenEOF:
			if expectOperand {
				if len(c.out) == 0 && len(c.stack) == 0 {
					return nil, syntaxError("Compile", tok, "empty formula")
				}
				return nil, syntaxError("Compile", tok, "formula ends with a dangling operator")
			}
			c.unwind()
			if f, ok := c.top(); ok {
				return nil, syntaxError("Compile", f.tok, "unbalanced '('")
			}
			return &Formula{source: src, steps: c.out}, nil
		}
	}
	return nil, errors.Internal(errors.ModuleFormula, "Compile", "token stream without EOF")
}

func unknownSymbol(op, name string) error {
	return errors.NewErrorBuilder(errors.ModuleFormula).
		Operation(op).
		Messagef("unknown symbol %s", name).
		Code(mdwerror.CodeUnknownSymbol).
		Detail("symbol", name).
		Build()
}

func arityError(op *Operator, argc int) error {
	want := fmt.Sprint(op.Arity.Right)
	if op.Arity.Right == Variadic {
		want = "at least 1"
	}
	return errors.NewErrorBuilder(errors.ModuleFormula).
		Operation("Compile").
		Messagef("%s takes %s argument(s), got %d", op.Name, want, argc).
		Code(mdwerror.CodeArity).
		Detail("function", op.Name).
		Detail("argc", argc).
		Build()
}
