// Package errors provides structured error types for iconpress.
//
// Every failure the tool reports carries a machine-readable [Code] so the
// CLI can tell fatal conditions (bad configuration, unreadable tree) apart
// from per-icon failures that are logged and skipped.
//
// # Error Codes
//
//   - INVALID_CONFIG: a rejected canvas size, scale or alignment (fatal)
//   - INVALID_PATH: the root directory does not exist or is not a directory (fatal)
//   - TRAVERSAL: a directory could not be listed during the walk (fatal)
//   - DECODE: one icon could not be parsed as SVG (recoverable)
//   - ENCODE: one rendered icon could not be encoded or written (recoverable)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", scale)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // abort the run
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecode, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors (fatal)
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Traversal errors (fatal)
	ErrCodeTraversal Code = "TRAVERSAL"

	// Per-icon errors (recoverable)
	ErrCodeDecode Code = "DECODE"
	ErrCodeEncode Code = "ENCODE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message followed by the cause (if any),
// without the code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err aborts a whole run rather than a single icon.
// Decode and encode failures are scoped to one icon; everything else,
// including plain errors without a code, is fatal.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeDecode, ErrCodeEncode:
		return false
	}
	return err != nil
}
