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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors: reported before any mutation
	ErrRuleFileNotFound ErrorCode = "RULEFILE_NOT_FOUND"
	ErrParse            ErrorCode = "PARSE"
	ErrInvalidRoot      ErrorCode = "INVALID_ROOT"
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"

	// Structural rule errors: may follow earlier moves in the same run
	ErrDuplicateCatchAll       ErrorCode = "DUPLICATE_CATCH_ALL"
	ErrMissingTarget           ErrorCode = "MISSING_TARGET"
	ErrOutsideRoot             ErrorCode = "OUTSIDE_ROOT"
	ErrRenameSourceMissing     ErrorCode = "RENAME_SOURCE_MISSING"
	ErrRenameDestinationExists ErrorCode = "RENAME_DESTINATION_EXISTS"

	// FileSystem errors
	ErrMove   ErrorCode = "FS_MOVE"
	ErrMkdir  ErrorCode = "FS_MKDIR"
	ErrRemove ErrorCode = "FS_REMOVE"
	ErrRead   ErrorCode = "FS_READ"
)

// Category groups error codes by how far a run may have progressed when they occur.
type Category string

const (
	CategoryConfig     Category = "ConfigError"
	CategoryStructural Category = "StructuralRuleError"
	CategoryFilesystem Category = "FilesystemError"
	CategoryUnknown    Category = "UnknownError"
)

// CategoryOf returns the taxonomy category of a code
func CategoryOf(code ErrorCode) Category {
	switch code {
	case ErrRuleFileNotFound, ErrParse, ErrInvalidRoot, ErrConfigLoad:
		return CategoryConfig
	case ErrDuplicateCatchAll, ErrMissingTarget, ErrOutsideRoot,
		ErrRenameSourceMissing, ErrRenameDestinationExists:
		return CategoryStructural
	case ErrMove, ErrMkdir, ErrRemove, ErrRead:
		return CategoryFilesystem
	default:
		return CategoryUnknown
	}
}

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Category returns the taxonomy category of the error's code
func (e *Error) Category() Category {
	return CategoryOf(e.Code)
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Details
	}
	return nil
}
