// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Lexical analysis of formula source text
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"fmt"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenNumber     // 12, 1.25, 3e-2
	TokenIdentifier // pi, sqrt, x1
	TokenOperator   // + - * / % ^ ** == != < <= > >=
	TokenAssign     // =

	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenNumber:     "NUMBER",
	TokenIdentifier: "IDENTIFIER",
	TokenOperator:   "OPERATOR",
	TokenAssign:     "ASSIGN",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
	TokenComma:      "COMMA",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its byte offset in the source
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Lexer splits formula source into tokens
type Lexer struct {
	input    string
	position int  // current char
	readPos  int  // after current char
	ch       byte // 0 at end of input, check position to tell from NUL
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.position
	if pos >= len(l.input) {
		return Token{Type: TokenEOF, Position: pos}
	}

	switch l.ch {
	case '+', '-', '/', '%', '^':
		return l.single(TokenOperator)
	case '*':
		if l.peekChar() == '*' {
			return l.double(TokenOperator)
		}
		return l.single(TokenOperator)
	case '=':
		if l.peekChar() == '=' {
			return l.double(TokenOperator)
		}
		return l.single(TokenAssign)
	case '!':
		if l.peekChar() == '=' {
			return l.double(TokenOperator)
		}
		return l.single(TokenIllegal)
	case '<', '>':
		if l.peekChar() == '=' {
			return l.double(TokenOperator)
		}
		return l.single(TokenOperator)
	case '(':
		return l.single(TokenLeftParen)
	case ')':
		return l.single(TokenRightParen)
	case ',':
		return l.single(TokenComma)
	}

	switch {
	case isLetter(l.ch):
		return Token{Type: TokenIdentifier, Value: l.readIdentifier(), Position: pos}
	case isDigit(l.ch), l.ch == '.' && isDigit(l.peekChar()):
		return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
	default:
		return l.single(TokenIllegal)
	}
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			return tokens, syntaxError("Tokenize", tok,
				fmt.Sprintf("illegal character %q at position %d", tok.Value, tok.Position))
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// Tokenize is a convenience wrapper around NewLexer(input).Tokenize()
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

func (l *Lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Value: string(l.ch), Position: l.position}
	l.readChar()
	return tok
}

func (l *Lexer) double(tt TokenType) Token {
	pos := l.position
	l.readChar()
	l.readChar()
	return Token{Type: tt, Value: l.input[pos:l.position], Position: pos}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads digits, an optional fraction and an optional exponent.
// An 'e' not followed by digits is left for the next token.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		offset := 1
		if next == '+' || next == '-' {
			offset = 2
		}
		if l.readPos+offset-1 < len(l.input) && isDigit(l.input[l.readPos+offset-1]) {
			for i := 0; i < offset; i++ {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func syntaxError(op string, tok Token, message string) error {
	return errors.NewErrorBuilder(errors.ModuleFormula).
		Operation(op).
		Message(message).
		Code(mdwerror.CodeSyntax).
		Detail("token", tok.Value).
		Detail("position", tok.Position).
		Build()
}
