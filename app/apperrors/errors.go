package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable codes surfaced in the error envelope.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeTypeMismatch    = "TYPE_MISMATCH"
	CodeSchemaViolation = "SCHEMA_VIOLATION"
	CodeCycle           = "CYCLE_ERROR"
	CodeDepthExceeded   = "DEPTH_EXCEEDED"
	CodeInvalidFilter   = "INVALID_FILTER"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError pairs a stable code with human-readable detail. Handlers map it to
// the HTTP status once, everything below just returns it.
type AppError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Status  int         `json:"-"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

func Validation(format string, args ...interface{}) *AppError {
	return newError(CodeValidation, fmt.Sprintf(format, args...), http.StatusUnprocessableEntity)
}

func TypeMismatch(format string, args ...interface{}) *AppError {
	return newError(CodeTypeMismatch, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func SchemaViolation(format string, args ...interface{}) *AppError {
	return newError(CodeSchemaViolation, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func Cycle(format string, args ...interface{}) *AppError {
	return newError(CodeCycle, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func DepthExceeded(format string, args ...interface{}) *AppError {
	return newError(CodeDepthExceeded, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func InvalidFilter(format string, args ...interface{}) *AppError {
	return newError(CodeInvalidFilter, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func NotFound(format string, args ...interface{}) *AppError {
	return newError(CodeNotFound, fmt.Sprintf(format, args...), http.StatusNotFound)
}

func Conflict(format string, args ...interface{}) *AppError {
	return newError(CodeConflict, fmt.Sprintf(format, args...), http.StatusConflict)
}

func Internal(err error) *AppError {
	return newError(CodeInternal, err.Error(), http.StatusInternalServerError)
}

// From extracts the AppError from err, wrapping anything unexpected as
// INTERNAL_ERROR so no error escapes without a code.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
