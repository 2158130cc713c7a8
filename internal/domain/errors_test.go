package domain

import (
	"net/http"
	"testing"
	"time"
)

func TestAppError(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		message   string
		details   string
		requestID string
		status    int
	}{
		{
			name:      "Missing file",
			code:      ErrInvalidInput,
			message:   "Nenhum ficheiro enviado",
			requestID: "req-123",
			status:    http.StatusBadRequest,
		},
		{
			name:      "Unreadable PDF",
			code:      ErrUnreadablePDF,
			message:   "Não foi possível extrair texto do PDF",
			details:   "extracted 12 characters",
			requestID: "req-456",
			status:    http.StatusUnprocessableEntity,
		},
		{
			name:    "Rate limited",
			code:    ErrRateLimit,
			message: "Too many requests",
			status:  http.StatusTooManyRequests,
		},
		{
			name:    "No platforms",
			code:    ErrNoPlatformsFound,
			message: "No social media accounts found",
			status:  http.StatusNotFound,
		},
		{
			name:    "Unknown code",
			code:    "SOMETHING_ELSE",
			message: "boom",
			status:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAppError(tt.code, tt.message, tt.details, tt.requestID)

			if err.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, err.Code)
			}
			if err.Details != tt.details {
				t.Errorf("Expected details %s, got %s", tt.details, err.Details)
			}
			if err.RequestID != tt.requestID {
				t.Errorf("Expected requestID %s, got %s", tt.requestID, err.RequestID)
			}
			if time.Since(err.Timestamp) > time.Minute {
				t.Errorf("Timestamp should be recent, got %v", err.Timestamp)
			}
			if err.Error() != tt.code+": "+tt.message {
				t.Errorf("Unexpected error string %s", err.Error())
			}
			if err.HTTPStatus() != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, err.HTTPStatus())
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("url", "must use http or https", "ftp://example.com")

	if err.Field != "url" {
		t.Errorf("Expected field url, got %s", err.Field)
	}
	expected := "validation error for field 'url': must use http or https"
	if err.Error() != expected {
		t.Errorf("Expected error string %s, got %s", expected, err.Error())
	}
}
