package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pedroganco/sanum/internal/domain"
)

// CorrelationIDKey is the gin context key holding the request's correlation ID.
const CorrelationIDKey = "correlation_id"

// SecurityHeaders adds security headers to all responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		// JSON only; nothing served here should load scripts or frames.
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Uploaded lab reports carry health data.
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Cache-Control", "no-store")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		c.Next()
	}
}

// CorrelationID adds a unique correlation ID to each request for audit trails
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = c.GetHeader("X-Request-ID")
		}
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set(CorrelationIDKey, correlationID)
		c.Header("X-Correlation-ID", correlationID)

		c.Next()
	}
}

// RequestTimeout bounds the request context. Handlers that honour the
// context stop once the deadline passes.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// BodyLimit rejects requests whose declared body exceeds maxBytes and caps
// reads for the rest.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			appErr := domain.NewAppError(domain.ErrFileTooLarge,
				fmt.Sprintf("Request body too large. Maximum size is %dMB.", maxBytes>>20), "", c.GetString(CorrelationIDKey))
			c.AbortWithStatusJSON(appErr.HTTPStatus(), appErr)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// AuditLogger writes one JSON line per request. Request bodies are never
// logged.
func AuditLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`{"timestamp":"%s","correlation_id":"%s","method":"%s","path":"%s","status":%d,"latency":"%s","client_ip":"%s","user_agent":%q,"response_size":%d}%s`,
			param.TimeStamp.Format(time.RFC3339),
			param.Keys[CorrelationIDKey],
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency,
			ClientKey(param.Request),
			param.Request.UserAgent(),
			param.BodySize,
			"\n",
		)
	})
}
