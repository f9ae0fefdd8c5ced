// File: format.go
// Title: Log Output Formatters
// Description: JSON, text and logfmt formatters for log entries. Field order is
//              sorted so output is stable across runs.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple formatters
// - 2026-10-09 v0.2.0: Sorted fields, dropped console colors
// - 2026-10-12 v0.3.0: Shared field rendering, duration in milliseconds

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatLogfmt
)

var formatNames = map[Format]string{
	FormatJSON:   "json",
	FormatText:   "text",
	FormatLogfmt: "logfmt",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter turns an entry into one output line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// NewFormatter returns the formatter for format, JSON for unknown values
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return &TextFormatter{TimestampFormat: "15:04:05"}
	case FormatLogfmt:
		return &LogfmtFormatter{TimestampFormat: time.RFC3339}
	default:
		return &JSONFormatter{TimestampFormat: time.RFC3339}
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+7)
	for k, v := range entry.Fields {
		if _, ok := v.(json.Marshaler); ok {
			data[k] = v
			continue
		}
		data[k] = plain(v)
	}

	data["timestamp"] = entry.Time.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Err != nil {
		data["error"] = entry.Err.Error()
		if m, ok := entry.Err.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}
	if entry.Caller != "" {
		data["caller"] = entry.Caller
	}
	if entry.Duration > 0 {
		data["duration_ms"] = millis(entry.Duration)
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// TextFormatter writes "time [LVL] {logger} message [k=v ...]"
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableTimestamp {
		b.WriteString(entry.Time.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] ", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, "{%s} ", entry.Logger)
	}
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, plain(entry.Fields[k]))
		}
		b.WriteByte(']')
	}
	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}
	if entry.Caller != "" {
		fmt.Fprintf(&b, " (%s)", entry.Caller)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter writes key=value pairs
type LogfmtFormatter struct {
	TimestampFormat string
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		entry.Time.Format(f.TimestampFormat), entry.Level, entry.Message)
	if entry.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", entry.Logger)
	}
	for _, k := range entry.Fields.Keys() {
		switch v := plain(entry.Fields[k]).(type) {
		case string:
			fmt.Fprintf(&b, " %s=%q", k, v)
		default:
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
	}
	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}
	if entry.Caller != "" {
		fmt.Fprintf(&b, " caller=%s", entry.Caller)
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration_ms=%.3f", millis(entry.Duration))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}
