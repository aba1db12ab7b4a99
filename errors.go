package trifract

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Error codes returned by the package.
const (
	// ErrCodeInvalidConfig marks a configuration value outside of its domain.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// ErrCodeConfigFile marks a configuration file which cannot be read or decoded.
	ErrCodeConfigFile Code = "CONFIG_FILE"
	// ErrCodePersist marks a failure while encoding or writing the picture.
	ErrCodePersist Code = "PERSIST_FAILURE"
	// ErrCodeInternal marks any other, unexpected failure.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Offending configuration field, for ErrCodeInvalidConfig
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

func invalidConfig(field, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidConfig,
		Field:   field,
		Message: fmt.Sprintf("%q incorrect: ", field) + fmt.Sprintf(format, args...),
	}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err, or any error it wraps, is an *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// FieldOf returns the configuration field rejected by validation,
// or an empty string if err is not a validation error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeInvalidConfig {
		return e.Field
	}
	return ""
}

// UserMessage returns the error message without the code prefix.
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
