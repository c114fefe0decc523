package errors

import (
	"fmt"
)

// ErrorCode is the discriminant carried by every AppError. Handlers map it
// to an HTTP status without inspecting message text.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Request errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Datastore errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound marks a missing record (owner/id mismatch included).
func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

// Validation marks a rejected request payload.
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// Internal wraps an unclassified persistence or integration failure.
func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeInternal, message, err)
}

// Unauthorized marks a failed identity check.
func Unauthorized(message string, err error) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, err)
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// CodeOf returns the discriminant of err, or ErrCodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
