// File: entry.go
// Title: Log Entry Structure
// Description: Defines the Entry type and the Fields map used to attach
//              structured data to log messages.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-09 v0.2.0: Removed request/user/correlation context
// - 2026-10-12 v0.3.0: Caller as file:line, Stringer values

package log

import (
	"fmt"
	"sort"
	"time"
)

// Entry is a single formatted record
type Entry struct {
	Time     time.Time
	Level    Level
	Message  string
	Logger   string
	Fields   Fields
	Err      error
	Duration time.Duration
	Caller   string // file:line, empty unless caller reporting is enabled
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merged returns a copy of f overlaid with every set in more
func (f Fields) merged(more ...Fields) Fields {
	n := len(f)
	for _, m := range more {
		n += len(m)
	}
	out := make(Fields, n)
	for k, v := range f {
		out[k] = v
	}
	for _, m := range more {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// plain converts errors and Stringers to their text so that numeric values
// print in canonical form rather than as struct dumps
func plain(v interface{}) interface{} {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}
