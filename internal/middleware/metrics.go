package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP collectors exposed on /metrics.
type Metrics struct {
	requests          *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	inFlight          prometheus.Gauge
	rateLimitRejected *prometheus.CounterVec
	gatherer          prometheus.Gatherer
}

// NewMetrics registers the collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sanum",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sanum",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "sanum",
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		rateLimitRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sanum",
			Name:      "rate_limit_rejections_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}, []string{"group"}),
		gatherer: reg,
	}
}

// Middleware records request counts and latency, labelled by the
// registered route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RateLimitRejected returns a callback for RateLimiter.Middleware that
// counts rejections for group.
func (m *Metrics) RateLimitRejected(group string) func(c *gin.Context) {
	counter := m.rateLimitRejected.WithLabelValues(group)
	return func(*gin.Context) {
		counter.Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
