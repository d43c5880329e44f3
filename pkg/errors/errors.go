package errors

import (
	"errors"
	"fmt"
)

// Error codes shared across the service. The HTTP layer maps these to
// response statuses, so new codes need a mapping in pkg/utils.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeLowBattery          = "LOW_BATTERY"
	CodeWeightExceeded      = "WEIGHT_EXCEEDED"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeInternal            = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf extracts the application error code from err, or CodeInternal when
// err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
