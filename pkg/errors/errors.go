// Package errors provides structured error handling for tabula.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of error.
type Kind string

const (
	// KindLengthMismatch indicates operand columns of differing lengths.
	KindLengthMismatch Kind = "length_mismatch"
	// KindDivideByZero indicates integer or decimal division/modulo by zero.
	KindDivideByZero Kind = "divide_by_zero"
	// KindUnsupported indicates a type combination or operator with no
	// defined promotion or kernel.
	KindUnsupported Kind = "unsupported"
	// KindOverflow indicates a checked narrowing conversion lost information.
	KindOverflow Kind = "overflow"
	// KindConversion indicates a value could not be converted between kinds.
	KindConversion Kind = "conversion"
	// KindParse indicates malformed input data.
	KindParse Kind = "parse"
	// KindConfig indicates invalid configuration.
	KindConfig Kind = "config"
)

// Error represents a structured error with context. Promotion-table lookups
// can be opaque, so arithmetic errors attach the offending operand kinds and
// lengths via WithDetail.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with additional context. Returns nil when
// err is nil.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, kind Kind, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: err}
}

// IsKind checks if the error is of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
