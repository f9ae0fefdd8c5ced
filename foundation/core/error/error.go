// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, a severity, the failing
//              operation, free-form details and the program counters of the
//              creating call. Unwrap keeps errors.Is and errors.As working across
//              fmt.Errorf wrappers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-09 v0.2.0: Removed request/user/localization context
// - 2026-10-12 v0.3.0: Lazy stack frames, severity derived from code, %+v

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"runtime"
	"sort"
)

// maxFrames bounds the captured call stack
const maxFrames = 20

// Error is a structured error. The zero severity is derived from the code
// until WithSeverity pins it.
type Error struct {
	msg     string
	cause   error
	code    Code
	sev     Severity
	pinned  bool
	op      string
	details map[string]interface{}
	pcs     []uintptr
}

// StackFrame is one resolved frame of an error's creation stack
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxFrames)
	return pcs[:runtime.Callers(skip+1, pcs)]
}

// New creates an Error with CodeUnknown
func New(message string) *Error {
	return &Error{msg: message, code: CodeUnknown, pcs: callers(2)}
}

// Wrap returns an Error with message whose cause is err, or nil for a nil err.
// The code, a pinned severity and the details of the nearest *Error in err's
// chain carry over.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	w := &Error{msg: message, cause: err, code: CodeUnknown, pcs: callers(2)}
	var inner *Error
	if stderrors.As(err, &inner) {
		w.code, w.sev, w.pinned = inner.code, inner.sev, inner.pinned
		w.WithDetails(inner.details)
	}
	return w
}

// Error implements the error interface as "message" or "message: cause"
func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error target with the same known code, so that
// errors.Is(err, mdwerror.New("").WithCode(CodeDomain)) finds domain errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code != CodeUnknown && t.code == e.code
}

// WithCode sets the code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity pins the severity regardless of the code
func (e *Error) WithSeverity(severity Severity) *Error {
	e.sev, e.pinned = severity, true
	return e
}

// WithDetail attaches key=value
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails attaches every pair of details
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// WithOperation records the failing operation, e.g. "tower.Pow"
func (e *Error) WithOperation(operation string) *Error {
	e.op = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string { return e.msg }

func (e *Error) Code() Code { return e.code }

func (e *Error) Operation() string { return e.op }

// Severity returns the pinned severity, or the one implied by the code
func (e *Error) Severity() Severity {
	if e.pinned {
		return e.sev
	}
	return e.code.Severity()
}

// Details returns a copy of the attached details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Detail returns one attached detail
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// StackTrace resolves the frames captured when the error was created
func (e *Error) StackTrace() []StackFrame {
	out := make([]StackFrame, 0, len(e.pcs))
	frames := runtime.CallersFrames(e.pcs)
	for {
		f, more := frames.Next()
		if f.Function != "" {
			out = append(out, StackFrame{Function: f.Function, File: f.File, Line: f.Line})
		}
		if !more {
			return out
		}
	}
}

func (e *Error) detailKeys() []string {
	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Format implements fmt.Formatter. %+v adds code, severity, operation,
// details and the creation stack to the message.
func (e *Error) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "%s\ncode=%s severity=%s", e.Error(), e.code, e.Severity())
		if e.op != "" {
			fmt.Fprintf(s, " operation=%s", e.op)
		}
		for _, k := range e.detailKeys() {
			fmt.Fprintf(s, " %s=%v", k, e.details[k])
		}
		for _, f := range e.StackTrace() {
			fmt.Fprintf(s, "\n\t%s\n\t\t%s:%d", f.Function, f.File, f.Line)
		}
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// MarshalJSON renders the error for structured log output
func (e *Error) MarshalJSON() ([]byte, error) {
	out := struct {
		Message   string                 `json:"message"`
		Code      Code                   `json:"code"`
		Severity  string                 `json:"severity"`
		Operation string                 `json:"operation,omitempty"`
		Details   map[string]interface{} `json:"details,omitempty"`
		Cause     string                 `json:"cause,omitempty"`
	}{
		Message:   e.msg,
		Code:      e.code,
		Severity:  e.Severity().String(),
		Operation: e.op,
		Details:   e.details,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// HasCode reports whether any *Error in err's chain carries code
func HasCode(err error, code Code) bool {
	return stderrors.Is(err, &Error{code: code})
}

// GetCode returns the code of the nearest *Error in err's chain, or CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the nearest *Error, or SeverityMedium
func GetSeverity(err error) Severity {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Severity()
	}
	return SeverityMedium
}
