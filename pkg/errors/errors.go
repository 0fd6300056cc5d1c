package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Catalog errors
	ErrCatalogNotFound ErrorCode = "CATALOG_NOT_FOUND"
	ErrCatalogCorrupt  ErrorCode = "CATALOG_CORRUPT"
	ErrStackNotFound   ErrorCode = "STACK_NOT_FOUND"

	// Install errors
	ErrInstallFailed  ErrorCode = "INSTALL_FAILED"
	ErrRunnerNotFound ErrorCode = "RUNNER_NOT_FOUND"
)

// CortexError represents a structured error with code and details
type CortexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CortexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CortexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CortexError) Is(target error) bool {
	var targetErr *CortexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CortexError with the given code and message
func New(code ErrorCode, message string) *CortexError {
	return &CortexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CortexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CortexError {
	return &CortexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CortexError
func Wrap(err error, code ErrorCode, message string) *CortexError {
	if err == nil {
		return nil
	}
	return &CortexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CortexError {
	if err == nil {
		return nil
	}
	return &CortexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CortexError) WithDetail(key string, value interface{}) *CortexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cortexErr *CortexError
	if errors.As(err, &cortexErr) {
		return cortexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CortexError
func GetErrorCode(err error) ErrorCode {
	var cortexErr *CortexError
	if errors.As(err, &cortexErr) {
		return cortexErr.Code
	}
	return ErrUnknown
}
