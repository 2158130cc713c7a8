package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedroganco/sanum/internal/domain"
)

// UnknownClient is the key used when a request carries no client address
// headers.
const UnknownClient = "unknown"

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter is an in-memory fixed-window counter keyed by client. A
// window opens on a client's first request and resets on the first request
// after it expires.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewRateLimiter allows limit requests per client per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow counts a request for key and reports whether it is within the
// limit, how many requests remain and when the window resets.
func (l *RateLimiter) Allow(key string) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{count: 1, resetAt: now.Add(l.window)}
		l.windows[key] = w
		return true, l.limit - 1, w.resetAt
	}

	if w.count >= l.limit {
		return false, 0, w.resetAt
	}

	w.count++
	return true, l.limit - w.count, w.resetAt
}

// Sweep drops expired windows and returns how many were removed.
func (l *RateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// StartSweeper sweeps expired windows every interval until ctx is done.
func (l *RateLimiter) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}

// Middleware rejects over-limit clients with 429 and message. onReject,
// when set, is called for every rejected request.
func (l *RateLimiter) Middleware(message string, onReject func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetAt := l.Allow(ClientKey(c.Request))

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			if onReject != nil {
				onReject(c)
			}
			retryAfter := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				domain.NewAppError(domain.ErrRateLimit, message, "", c.GetString(CorrelationIDKey)))
			return
		}
		c.Next()
	}
}

// ClientKey identifies the caller: the first X-Forwarded-For entry, then
// X-Real-IP, else UnknownClient.
func ClientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UnknownClient
}
