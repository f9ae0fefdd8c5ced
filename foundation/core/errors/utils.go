// File: utils.go
// Title: Error Builder
// Description: Fluent builder for module errors whose code and message are
//              assembled in several steps, as the formula compiler does.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-09 v0.2.0: Typed codes, dropped reflection helpers
// - 2026-10-12 v0.3.0: Built on the module constructors

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

// ErrorBuilder accumulates the parts of a module error. The zero code is
// CodeUnknown; the default message is "<module>.<operation> failed".
type ErrorBuilder struct {
	module, op, msg string
	code            mdwerror.Code
	cause           error
	extra           map[string]interface{}
}

// NewErrorBuilder starts an error for module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{module: module, code: mdwerror.CodeUnknown}
}

func (b *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	b.op = operation
	return b
}

func (b *ErrorBuilder) Message(message string) *ErrorBuilder {
	b.msg = message
	return b
}

func (b *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	return b.Message(fmt.Sprintf(format, args...))
}

// Cause makes the built error wrap cause
func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

func (b *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	if b.extra == nil {
		b.extra = make(map[string]interface{})
	}
	b.extra[key] = value
	return b
}

func (b *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	b.code = code
	return b
}

// Build returns the error. The builder may be reused afterwards.
func (b *ErrorBuilder) Build() *mdwerror.Error {
	msg := b.msg
	if msg == "" {
		msg = qualified(b.module, b.op) + " failed"
	}
	var err *mdwerror.Error
	if b.cause != nil {
		err = mdwerror.Wrap(b.cause, msg)
	} else {
		err = mdwerror.New(msg)
	}
	return scoped(err.WithCode(b.code), b.module, b.op).WithDetails(b.extra)
}
