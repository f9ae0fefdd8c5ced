// File: logger.go
// Title: Core Logger Implementation
// Description: Leveled structured logger. Loggers are immutable values; every
//              With* call returns a derived logger sharing the parent's sink.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-09 v0.2.0: Synchronous only, Discard logger
// - 2026-10-12 v0.3.0: Immutable loggers over a shared sink, no package default

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

// sink serializes writes of all loggers derived from one root
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	fmt Formatter
}

func (s *sink) write(e *Entry) {
	b, err := s.fmt.Format(e)
	if err != nil {
		return
	}
	s.mu.Lock()
	_, _ = s.w.Write(b)
	s.mu.Unlock()
}

// Logger writes structured entries at or above its minimum level
type Logger struct {
	min    Level
	name   string
	fields Fields
	caller bool
	skip   int
	out    *sink
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer // defaults to os.Stderr
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New returns an info level JSON logger on stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	w := config.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		min:    config.Level,
		name:   config.Name,
		caller: config.EnableCaller,
		skip:   config.CallerSkipFrames,
		out:    &sink{w: w, fmt: NewFormatter(config.Format)},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

func (l *Logger) derive(fn func(*Logger)) *Logger {
	c := *l
	fn(&c)
	return &c
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.min = level })
}

// WithName returns a logger with a different name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithOutput returns a logger writing to w with the same format
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.out = &sink{w: w, fmt: l.out.fmt} })
}

// WithField returns a logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = l.fields.merged(fields) })
}

// Level returns the minimum level
func (l *Logger) Level() Level { return l.min }

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool { return level.Enabled(l.min) }

func (l *Logger) Trace(msg string, fields ...Fields) { l.emit(LevelTrace, msg, nil, 0, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.emit(LevelDebug, msg, nil, 0, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.emit(LevelInfo, msg, nil, 0, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.emit(LevelWarn, msg, nil, 0, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.emit(LevelError, msg, nil, 0, fields) }

// Fatal logs at fatal level and exits with status 1
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.emit(LevelFatal, msg, nil, 0, fields)
	os.Exit(1)
}

// Log writes msg at level with an attached error, which may be nil
func (l *Logger) Log(level Level, msg string, err error, fields ...Fields) {
	l.emit(level, msg, err, 0, fields)
}

// LogError logs err at a level derived from the severity of the first
// structured error in its chain. Caller mistakes (SeverityLow) log at info;
// errors without a structured cause log at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	var se *mdwerror.Error
	if !errors.As(err, &se) {
		l.emit(LevelError, err.Error(), err, 0, nil)
		return
	}

	f := Fields{
		"error_code":     se.Code(),
		"error_severity": se.Severity().String(),
	}
	if op := se.Operation(); op != "" {
		f["error_operation"] = op
	}
	for k, v := range se.Details() {
		f["error_"+k] = v
	}

	level := LevelError
	switch se.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.emit(level, err.Error(), err, 0, []Fields{f})
}

// StartTimer starts a timer that logs operation at debug level when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now()}
}

func (l *Logger) emit(level Level, msg string, err error, d time.Duration, fields []Fields) {
	if !l.Enabled(level) {
		return
	}
	e := &Entry{
		Time:     time.Now(),
		Level:    level,
		Message:  msg,
		Logger:   l.name,
		Fields:   l.fields.merged(fields...),
		Err:      err,
		Duration: d,
	}
	if l.caller {
		// skip emit and the exported method
		if _, file, line, ok := runtime.Caller(2 + l.skip); ok {
			e.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}
	l.out.write(e)
}
