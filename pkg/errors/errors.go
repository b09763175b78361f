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
	ErrUnsupported  ErrorCode = "UNSUPPORTED"
	ErrPanic        ErrorCode = "PANIC"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Network path errors
	ErrParseFailed   ErrorCode = "PARSE_FAILED"
	ErrMappingQuery  ErrorCode = "MAPPING_QUERY"
	ErrMappingCreate ErrorCode = "MAPPING_CREATE"
	ErrNoFreeLetter  ErrorCode = "NO_FREE_LETTER"
	ErrDriveQuery    ErrorCode = "DRIVE_QUERY"

	// Launch errors
	ErrLaunch      ErrorCode = "LAUNCH"
	ErrScriptWrite ErrorCode = "SCRIPT_WRITE"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
)

// GoconemuError represents a structured error with code and details
type GoconemuError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GoconemuError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GoconemuError) Unwrap() error {
	return e.Wrapped
}

// Is matches any GoconemuError carrying the same code
func (e *GoconemuError) Is(target error) bool {
	var targetErr *GoconemuError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GoconemuError with the given code and message
func New(code ErrorCode, message string) *GoconemuError {
	return &GoconemuError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GoconemuError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GoconemuError {
	return &GoconemuError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GoconemuError
func Wrap(err error, code ErrorCode, message string) *GoconemuError {
	if err == nil {
		return nil
	}
	return &GoconemuError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GoconemuError {
	if err == nil {
		return nil
	}
	return &GoconemuError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GoconemuError) WithDetail(key string, value interface{}) *GoconemuError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GoconemuError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GoconemuError
func GetErrorCode(err error) ErrorCode {
	var gErr *GoconemuError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GoconemuError
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GoconemuError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}
