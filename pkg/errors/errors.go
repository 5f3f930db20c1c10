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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Setting errors
	ErrUnboundAccessor ErrorCode = "UNBOUND_ACCESSOR"
	ErrAdvisory        ErrorCode = "ADVISORY"

	// Value errors
	ErrEncode ErrorCode = "ENCODE"
	ErrDecode ErrorCode = "DECODE"

	// Persistence errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrParse        ErrorCode = "PARSE"
)

// NostalgicError represents a structured error with a stable code
type NostalgicError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *NostalgicError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NostalgicError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NostalgicError) Is(target error) bool {
	var targetErr *NostalgicError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NostalgicError with the given code and message
func New(code ErrorCode, message string) *NostalgicError {
	return &NostalgicError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new NostalgicError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NostalgicError {
	return &NostalgicError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a NostalgicError
func Wrap(err error, code ErrorCode, message string) *NostalgicError {
	if err == nil {
		return nil
	}
	return &NostalgicError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NostalgicError {
	if err == nil {
		return nil
	}
	return &NostalgicError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nerr *NostalgicError
	if errors.As(err, &nerr) {
		return nerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NostalgicError
func GetErrorCode(err error) ErrorCode {
	var nerr *NostalgicError
	if errors.As(err, &nerr) {
		return nerr.Code
	}
	return ErrUnknown
}
