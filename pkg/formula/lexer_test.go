// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Tests for the formula lexer
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "binary expression",
			input: "1 + 2",
			want: []Token{
				{Type: TokenNumber, Value: "1", Position: 0},
				{Type: TokenOperator, Value: "+", Position: 2},
				{Type: TokenNumber, Value: "2", Position: 4},
				{Type: TokenEOF, Position: 5},
			},
		},
		{
			name:  "two character operators",
			input: "a**b<=c==d!=e>=f",
			want: []Token{
				{Type: TokenIdentifier, Value: "a", Position: 0},
				{Type: TokenOperator, Value: "**", Position: 1},
				{Type: TokenIdentifier, Value: "b", Position: 3},
				{Type: TokenOperator, Value: "<=", Position: 4},
				{Type: TokenIdentifier, Value: "c", Position: 6},
				{Type: TokenOperator, Value: "==", Position: 7},
				{Type: TokenIdentifier, Value: "d", Position: 9},
				{Type: TokenOperator, Value: "!=", Position: 10},
				{Type: TokenIdentifier, Value: "e", Position: 12},
				{Type: TokenOperator, Value: ">=", Position: 13},
				{Type: TokenIdentifier, Value: "f", Position: 15},
				{Type: TokenEOF, Position: 16},
			},
		},
		{
			name:  "assignment and call",
			input: "x = max(1, y_2)",
			want: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0},
				{Type: TokenAssign, Value: "=", Position: 2},
				{Type: TokenIdentifier, Value: "max", Position: 4},
				{Type: TokenLeftParen, Value: "(", Position: 7},
				{Type: TokenNumber, Value: "1", Position: 8},
				{Type: TokenComma, Value: ",", Position: 9},
				{Type: TokenIdentifier, Value: "y_2", Position: 11},
				{Type: TokenRightParen, Value: ")", Position: 14},
				{Type: TokenEOF, Position: 15},
			},
		},
		{
			name:  "numbers",
			input: "1.25 .5 3e-2 4E+1 7e",
			want: []Token{
				{Type: TokenNumber, Value: "1.25", Position: 0},
				{Type: TokenNumber, Value: ".5", Position: 5},
				{Type: TokenNumber, Value: "3e-2", Position: 8},
				{Type: TokenNumber, Value: "4E+1", Position: 13},
				{Type: TokenNumber, Value: "7", Position: 18},
				{Type: TokenIdentifier, Value: "e", Position: 19},
				{Type: TokenEOF, Position: 20},
			},
		},
		{
			name:  "empty",
			input: "  ",
			want:  []Token{{Type: TokenEOF, Position: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenize_Illegal(t *testing.T) {
	for _, input := range []string{"1 $ 2", "!", "2 # 3", "a & b", "1\x00+2", "\x00"} {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize(input)
			if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
				t.Errorf("Tokenize(%q) error = %v, want SYNTAX", input, err)
			}
		})
	}
}

func TestTokenize_NULIsNotEnd(t *testing.T) {
	tokens, err := Tokenize("1\x00+2")
	if err == nil {
		t.Fatalf("Tokenize stopped at NUL: %v", tokens)
	}
	if _, err := Compile("1\x00+2"); !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Errorf("Compile error = %v, want SYNTAX", err)
	}
}

func TestToken_String(t *testing.T) {
	if got := (Token{Type: TokenOperator, Value: "**"}).String(); got != "OPERATOR(**)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Token{Type: TokenEOF}).String(); got != "EOF" {
		t.Errorf("String() = %q", got)
	}
	if got := TokenType(99).String(); got != "UNKNOWN" {
		t.Errorf("String() = %q", got)
	}
}
