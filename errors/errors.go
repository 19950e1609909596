package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed operation for callers.
type ErrorCode string

const (
	// Malformed or missing input, rejected before any store access
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// Uniqueness violation, invalid date range, invalid status transition
	ErrCodeConflict ErrorCode = "CONFLICT"
	// Missing parent, cross-property reference, delete blocked by dependents
	ErrCodeReference ErrorCode = "REFERENCE_ERROR"
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	// Underlying store failure; never carries the raw detail to the caller
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// GenericFailureMessage is what callers see for storage failures.
const GenericFailureMessage = "internal error, please retry"

// AppError is an expected, caller-actionable failure.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping err.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(format string, args ...interface{}) *AppError {
	return NewAppError(ErrCodeValidation, fmt.Sprintf(format, args...), nil)
}

func Conflict(format string, args ...interface{}) *AppError {
	return NewAppError(ErrCodeConflict, fmt.Sprintf(format, args...), nil)
}

func Reference(format string, args ...interface{}) *AppError {
	return NewAppError(ErrCodeReference, fmt.Sprintf(format, args...), nil)
}

func NotFound(format string, args ...interface{}) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf(format, args...), nil)
}

// Storage wraps a store failure. The message stays generic.
func Storage(err error) *AppError {
	return NewAppError(ErrCodeDBError, GenericFailureMessage, err)
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}
