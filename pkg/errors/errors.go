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

	// Catalog errors
	ErrCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrUnknownComponent   ErrorCode = "UNKNOWN_COMPONENT"

	// Rendering errors
	ErrTemplateNotFound   ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrUnresolvedVariable ErrorCode = "UNRESOLVED_VARIABLE"

	// Installation errors
	ErrTargetExists ErrorCode = "TARGET_EXISTS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Build-file reconfiguration errors
	ErrBuildFileConfig ErrorCode = "BUILD_FILE_CONFIG"
)

// TemplateError represents a structured error with code and details
type TemplateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TemplateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TemplateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TemplateError) Is(target error) bool {
	var targetErr *TemplateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TemplateError with the given code and message
func New(code ErrorCode, message string) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TemplateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TemplateError
func Wrap(err error, code ErrorCode, message string) *TemplateError {
	if err == nil {
		return nil
	}
	return &TemplateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TemplateError {
	if err == nil {
		return nil
	}
	return &TemplateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TemplateError) WithDetail(key string, value interface{}) *TemplateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tmplErr *TemplateError
	if errors.As(err, &tmplErr) {
		return tmplErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TemplateError
func GetErrorCode(err error) ErrorCode {
	var tmplErr *TemplateError
	if errors.As(err, &tmplErr) {
		return tmplErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TemplateError
func GetErrorDetails(err error) map[string]interface{} {
	var tmplErr *TemplateError
	if errors.As(err, &tmplErr) {
		return tmplErr.Details
	}
	return nil
}
