// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     formula
// Description: Interactive evaluation sessions with variables and ans
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package formula

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/numtower/foundation/core/log"
	"github.com/msto63/numtower/pkg/tower"
)

// AnsName is the variable that holds the last result of a session
const AnsName = "ans"

// Result is the outcome of one session line
type Result struct {
	// Name is the assigned variable, empty for a bare expression
	Name    string
	Value   tower.Value
	Formula *Formula
}

// Session evaluates lines against a mutable set of variables
type Session struct {
	id     string
	logger *log.Logger

	mu   sync.Mutex
	vars Env
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLogger sets the logger for evaluation timings and failures
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID replaces the generated session ID
func WithID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates an empty session
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: log.Discard(),
		vars:   make(Env),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithFields(log.Fields{"component": "formula-session", "session": s.id})
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Eval evaluates one line. A line of the form "name = expr" assigns the result
// to name. Every successful line also sets ans.
func (s *Session) Eval(line string) (Result, error) {
	timer := s.logger.StartTimer("formula.eval").WithField("expr", line)

	res, err := s.eval(line)
	if err != nil {
		timer.Cancel()
		s.logger.LogError(err)
		return Result{}, err
	}

	timer.WithField("result", res.Value.String()).Stop()
	return res, nil
}

func (s *Session) eval(line string) (Result, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Result{}, err
	}

	var name string
	if len(tokens) > 2 && tokens[0].Type == TokenIdentifier && tokens[1].Type == TokenAssign {
		name = tokens[0].Value
		if err := checkAssignable(tokens[0]); err != nil {
			return Result{}, err
		}
		tokens = tokens[2:]
	}

	f, err := compileTokens(line, tokens)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := f.Eval(s.vars)
	if err != nil {
		return Result{}, err
	}
	if name != "" {
		s.vars[name] = v
	}
	s.vars[AnsName] = v
	return Result{Name: name, Value: v, Formula: f}, nil
}

func checkAssignable(tok Token) error {
	switch {
	case tok.Value == AnsName:
		return syntaxError("Assign", tok, "ans cannot be assigned")
	case tower.Constants[tok.Value] != nil:
		return syntaxError("Assign", tok, fmt.Sprintf("constant %s cannot be assigned", tok.Value))
	}
	if _, ok := LookupFunction(tok.Value); ok {
		return syntaxError("Assign", tok, fmt.Sprintf("function %s cannot be assigned", tok.Value))
	}
	return nil
}

// Set binds name to v
func (s *Session) Set(name string, v tower.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = v
}

// Get returns the value bound to name
func (s *Session) Get(name string) (tower.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vars[name]
	return v, ok
}

// Vars returns the bound variable names, sorted
func (s *Session) Vars() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops all variables including ans
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = make(Env)
	s.logger.Debug("session reset")
}
