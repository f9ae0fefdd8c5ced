// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on completion.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-09 v0.2.0: Entry duration instead of duplicated fields
// - 2026-10-12 v0.3.0: Created through Logger.StartTimer only

package log

import (
	"time"
)

// Timer measures one operation. A timer reports at most once.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	done      bool
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	if t.fields == nil {
		t.fields = Fields{}
	}
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" at debug level and returns the elapsed time
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, " completed", nil)
}

// StopWithError logs "<operation> failed" with err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	t.WithField("success", false)
	return t.finish(LevelError, " failed", err)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.done = true
}

// Running reports whether the timer has not yet been stopped or cancelled
func (t *Timer) Running() bool {
	return !t.done
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	d := t.Elapsed()
	t.logger.emit(level, t.operation+suffix, err, d, []Fields{t.fields, {"operation": t.operation}})
	return d
}
