package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeInvalidInput    ErrorType = "invalid_input"
	ErrorTypeFormatParse     ErrorType = "format_parse"
	ErrorTypeUnsupportedType ErrorType = "unsupported_analysis_type"
	ErrorTypeBatchTooLarge   ErrorType = "batch_too_large"
	ErrorTypeEmptyBatch      ErrorType = "empty_batch"
	ErrorTypeValidation      ErrorType = "validation"
	ErrorTypeTimeout         ErrorType = "timeout"
	ErrorTypeInternal        ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"status_code"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an error for empty or non-text content
func NewInvalidInputError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidInput,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewFormatParseError creates an error for malformed structured content
// under an explicit format hint
func NewFormatParseError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeFormatParse,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewUnsupportedTypeError creates an error for an unknown analysis type
func NewUnsupportedTypeError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupportedType,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewBatchTooLargeError creates an error for a batch above the size limit
func NewBatchTooLargeError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeBatchTooLarge,
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// NewEmptyBatchError creates an error for a batch with no items
func NewEmptyBatchError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyBatch,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    message,
		StatusCode: http.StatusGatewayTimeout,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// Kind extracts the error type from an error, defaulting to internal
func Kind(err error) ErrorType {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// GetStatusCode extracts the HTTP status code from an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
