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

	// Group errors
	ErrGroupNotFound  ErrorCode = "GROUP_NOT_FOUND"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Manifest errors
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrManifestRead     ErrorCode = "MANIFEST_READ"
	ErrManifestParse    ErrorCode = "MANIFEST_PARSE"

	// Workspace metadata errors
	ErrMetadataLoad  ErrorCode = "METADATA_LOAD"
	ErrMetadataParse ErrorCode = "METADATA_PARSE"

	// Build tool errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrToolExec     ErrorCode = "TOOL_EXEC"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// GroupsError represents a structured error with code and details
type GroupsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GroupsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GroupsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GroupsError) Is(target error) bool {
	var targetErr *GroupsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GroupsError with the given code and message
func New(code ErrorCode, message string) *GroupsError {
	return &GroupsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GroupsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GroupsError {
	return &GroupsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GroupsError
func Wrap(err error, code ErrorCode, message string) *GroupsError {
	if err == nil {
		return nil
	}
	return &GroupsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GroupsError {
	if err == nil {
		return nil
	}
	return &GroupsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GroupsError) WithDetail(key string, value interface{}) *GroupsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var groupsErr *GroupsError
	if errors.As(err, &groupsErr) {
		return groupsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GroupsError
func GetErrorCode(err error) ErrorCode {
	var groupsErr *GroupsError
	if errors.As(err, &groupsErr) {
		return groupsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GroupsError
func GetErrorDetails(err error) map[string]interface{} {
	var groupsErr *GroupsError
	if errors.As(err, &groupsErr) {
		return groupsErr.Details
	}
	return nil
}
