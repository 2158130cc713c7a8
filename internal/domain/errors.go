package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError is the error body returned to API clients.
type AppError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput       = "INVALID_INPUT"
	ErrInvalidFileType    = "INVALID_FILE_TYPE"
	ErrFileTooLarge       = "FILE_TOO_LARGE"
	ErrUnreadablePDF      = "UNREADABLE_PDF"
	ErrSiteUnreachable    = "SITE_UNREACHABLE"
	ErrNoPlatformsFound   = "NO_PLATFORMS_FOUND"
	ErrResourceNotFound   = "NOT_FOUND"
	ErrRateLimit          = "RATE_LIMIT_EXCEEDED"
	ErrLLMResponse        = "LLM_RESPONSE_INVALID"
	ErrServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrInternalServer     = "INTERNAL_ERROR"
)

// Sentinel errors raised by the outer pipeline. Handlers map them to codes
// with errors.Is.
var (
	ErrTextTooShort     = errors.New("extracted text too short")
	ErrNoJSON           = errors.New("model response contains no JSON object")
	ErrInvalidJSON      = errors.New("model response contains invalid JSON")
	ErrFetchFailed      = errors.New("fetch failed")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrNoPlatforms      = errors.New("no social media accounts found")
	ErrLLMUnavailable   = errors.New("language model unavailable")
	ErrLLMNotConfigured = errors.New("language model not configured")
)

var statusByCode = map[string]int{
	ErrInvalidInput:       http.StatusBadRequest,
	ErrInvalidFileType:    http.StatusBadRequest,
	ErrFileTooLarge:       http.StatusBadRequest,
	ErrUnreadablePDF:      http.StatusUnprocessableEntity,
	ErrSiteUnreachable:    http.StatusBadRequest,
	ErrNoPlatformsFound:   http.StatusNotFound,
	ErrResourceNotFound:   http.StatusNotFound,
	ErrRateLimit:          http.StatusTooManyRequests,
	ErrLLMResponse:        http.StatusBadGateway,
	ErrServiceUnavailable: http.StatusServiceUnavailable,
	ErrInternalServer:     http.StatusInternalServerError,
}

// HTTPStatus returns the status code the error should be served with.
func (e *AppError) HTTPStatus() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewAppError creates a new AppError with timestamp
func NewAppError(code, message, details, requestID string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
