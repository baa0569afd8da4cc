// Package errors provides the coded error type shared by the engine,
// repositories and services. Codes survive wrapping so callers can branch
// on the kind of failure without matching messages.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is an error with a code, a message and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata value and returns the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and a copy of its
// metadata; any other cause becomes CodeUnknown. Wrap(nil) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if coded := as(err); coded != nil {
		wrapped.Code = coded.Code
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

// GetCode returns the code of the outermost coded error in the chain
func GetCode(err error) Code {
	if coded := as(err); coded != nil {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost coded error in the chain
func GetMeta(err error) map[string]any {
	if coded := as(err); coded != nil {
		return coded.Meta
	}
	return nil
}

// Is reports whether the outermost coded error in the chain has code
func Is(err error, code Code) bool {
	coded := as(err)
	return coded != nil && coded.Code == code
}

func as(err error) *Error {
	var coded *Error
	if errors.As(err, &coded) {
		return coded
	}
	return nil
}
