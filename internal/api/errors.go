package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/middleware"
)

// fail aborts the request with an AppError. The cause is logged, never sent.
func (s *Server) fail(c *gin.Context, code, message string, cause error) {
	s.abort(c, domain.NewAppError(code, message, "", c.GetString(middleware.CorrelationIDKey)), cause)
}

// failValidation rejects a request with a single invalid field. The field
// name is returned in details.
func (s *Server) failValidation(c *gin.Context, verr *domain.ValidationError) {
	s.abort(c, domain.NewAppError(domain.ErrInvalidInput, verr.Message, verr.Field, c.GetString(middleware.CorrelationIDKey)), verr)
}

func (s *Server) abort(c *gin.Context, appErr *domain.AppError, cause error) {
	code := appErr.Code
	status := appErr.HTTPStatus()

	entry := s.logger.WithFields(logrus.Fields{
		"correlation_id": appErr.RequestID,
		"path":           c.FullPath(),
		"code":           code,
		"status":         status,
	})
	if cause != nil {
		entry = entry.WithError(cause)
	}
	if status >= 500 {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}

	c.AbortWithStatusJSON(status, appErr)
}

// modelFailureCode classifies errors coming back from the language model.
// It reports false for anything else.
func modelFailureCode(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrNoJSON), errors.Is(err, domain.ErrInvalidJSON):
		return domain.ErrLLMResponse, true
	case errors.Is(err, domain.ErrLLMUnavailable), errors.Is(err, domain.ErrLLMNotConfigured):
		return domain.ErrServiceUnavailable, true
	}
	return "", false
}
