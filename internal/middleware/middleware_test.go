package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(3, 15*time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, resetAt := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, now.Add(15*time.Minute), resetAt)

	// Other clients have their own window.
	allowed, _, _ = limiter.Allow("5.6.7.8")
	assert.True(t, allowed)

	// Exactly at resetAt the window is still closed.
	now = now.Add(15 * time.Minute)
	allowed, _, _ = limiter.Allow("1.2.3.4")
	assert.False(t, allowed)

	now = now.Add(time.Millisecond)
	allowed, remaining, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(10, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.Allow("a")
	now = now.Add(30 * time.Second)
	limiter.Allow("b")
	assert.Equal(t, 2, limiter.Len())

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, limiter.Sweep())
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiter_StartSweeper(t *testing.T) {
	limiter := NewRateLimiter(1, time.Millisecond)
	limiter.Allow("a")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter.StartSweeper(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.1"}, "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.1"}, "198.51.100.1"},
		{"none", nil, UnknownClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientKey(req))
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(2, 15*time.Minute)
	rejected := 0

	router := gin.New()
	router.Use(CorrelationID())
	router.POST("/scan", limiter.Middleware("Too many requests. Try again in 15 minutes.", func(*gin.Context) { rejected++ }),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("1.1.1.1").Code)
	w := send("1.1.1.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = send("1.1.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, 1, rejected)

	var body domain.AppError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrRateLimit, body.Code)
	assert.Equal(t, "Too many requests. Try again in 15 minutes.", body.Message)
	assert.NotEmpty(t, body.RequestID)

	assert.Equal(t, http.StatusOK, send("2.2.2.2").Code)
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"), "HSTS only in release mode")
}

func TestCorrelationID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString(CorrelationIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get("X-Correlation-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRequestTimeout(t *testing.T) {
	router := gin.New()
	router.Use(RequestTimeout(10 * time.Millisecond))
	router.GET("/", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(1 << 20))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2<<20))))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/api/v1/markers/:name", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", metrics.Handler())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/markers/Glicose", nil))
	metrics.RateLimitRejected("scan")(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `sanum_http_requests_total{method="GET",route="/api/v1/markers/:name",status="200"} 1`)
	assert.Contains(t, body, `sanum_rate_limit_rejections_total{group="scan"} 1`)
	assert.NotContains(t, body, "Glicose")
}
