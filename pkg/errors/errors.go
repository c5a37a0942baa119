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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad      ErrorCode = "CONFIG_LOAD"
	ErrConfigParse     ErrorCode = "CONFIG_PARSE"
	ErrConfigValid     ErrorCode = "CONFIG_INVALID"
	ErrProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// Routing errors, raised while building a plan
	ErrRoutingConflict ErrorCode = "ROUTING_CONFLICT"
	ErrOutsideRoot     ErrorCode = "OUTSIDE_ROOT"

	// Write errors, raised while staging a build
	ErrRender       ErrorCode = "RENDER"
	ErrTemplateLoad ErrorCode = "TEMPLATE_LOAD"
	ErrContentMode  ErrorCode = "CONTENT_MODE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrStaging      ErrorCode = "STAGING"

	// Promotion errors. These are the only errors that may leave the
	// public output directory in a state worse than before the build.
	ErrPromote ErrorCode = "PROMOTE"

	// Extension errors
	ErrEngineNotFound  ErrorCode = "ENGINE_NOT_FOUND"
	ErrBuildInProgress ErrorCode = "BUILD_IN_PROGRESS"
)

// VoltError represents a structured error with code and details
type VoltError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VoltError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VoltError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VoltError) Is(target error) bool {
	var targetErr *VoltError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VoltError with the given code and message
func New(code ErrorCode, message string) *VoltError {
	return &VoltError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VoltError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VoltError {
	return &VoltError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VoltError
func Wrap(err error, code ErrorCode, message string) *VoltError {
	if err == nil {
		return nil
	}
	return &VoltError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VoltError {
	if err == nil {
		return nil
	}
	return &VoltError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VoltError) WithDetail(key string, value interface{}) *VoltError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *VoltError) WithDetails(details map[string]interface{}) *VoltError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var voltErr *VoltError
	if errors.As(err, &voltErr) {
		return voltErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VoltError
func GetErrorCode(err error) ErrorCode {
	var voltErr *VoltError
	if errors.As(err, &voltErr) {
		return voltErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VoltError
func GetErrorDetails(err error) map[string]interface{} {
	var voltErr *VoltError
	if errors.As(err, &voltErr) {
		return voltErr.Details
	}
	return nil
}

// IsPromotionFailure reports whether err happened while replacing the public
// output directory, after which the previous build may no longer be intact.
func IsPromotionFailure(err error) bool {
	return IsErrorCode(err, ErrPromote)
}
