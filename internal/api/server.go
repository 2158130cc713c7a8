package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/middleware"
	"github.com/pedroganco/sanum/internal/service"
)

// Rate limit messages, per route group.
const (
	reportsRateLimitMessage = "Demasiados pedidos. Tenta novamente em 15 minutos."
	scanRateLimitMessage    = "Too many requests. Try again in 15 minutes."
)

// multipartOverhead is allowed on top of the file size limit for the
// multipart envelope of an upload.
const multipartOverhead = 1 << 20

// ReportPipeline parses and analyzes lab reports.
type ReportPipeline interface {
	Parse(ctx context.Context, pdf io.Reader) (*service.ParseResult, error)
	Analyze(ctx context.Context, report *domain.Report, age *int, sex *domain.Sex) (*domain.Analysis, error)
}

// Scanner discovers and analyzes a website's social presence.
type Scanner interface {
	Discover(ctx context.Context, rawURL string) (*domain.ScanResult, error)
	Analyze(ctx context.Context, req *domain.SocialAnalysisRequest) (*domain.SocialAnalysis, error)
	History(ctx context.Context, limit, offset int) ([]*domain.ScanRecord, error)
}

// MarkerCatalog is the read side of the knowledge base.
type MarkerCatalog interface {
	Lookup(name string) (*domain.MarkerInfo, bool)
	Entries() []domain.MarkerInfo
	ByCategory(c domain.Category) []domain.MarkerInfo
}

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Dependencies are the collaborators the HTTP layer serves.
type Dependencies struct {
	Reports      ReportPipeline
	Scans        Scanner
	Markers      MarkerCatalog
	Metrics      *middleware.Metrics
	HealthChecks map[string]HealthCheck
	Version      string
}

// Server represents the HTTP server
type Server struct {
	config  *domain.Config
	deps    Dependencies
	logger  *logrus.Logger
	router  *gin.Engine
	server  *http.Server
	limits  map[string]*middleware.RateLimiter
	started time.Time
}

// NewServer creates a new HTTP server instance
func NewServer(config *domain.Config, logger *logrus.Logger, deps Dependencies) *Server {
	if deps.Version == "" {
		deps.Version = "dev"
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.AuditLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(corsMiddleware(config.Server.AllowedOrigins))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	window := config.RateLimit.Window
	s := &Server{
		config: config,
		deps:   deps,
		logger: logger,
		router: router,
		limits: map[string]*middleware.RateLimiter{
			"parse":         middleware.NewRateLimiter(config.RateLimit.Parse, window),
			"analyze":       middleware.NewRateLimiter(config.RateLimit.Analyze, window),
			"scan_discover": middleware.NewRateLimiter(config.RateLimit.Scan, window),
			"scan_analyze":  middleware.NewRateLimiter(config.RateLimit.Scan, window),
		},
		started: time.Now(),
	}

	s.setupRoutes()
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.config.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	for _, limiter := range s.limits {
		limiter.StartSweeper(ctx, s.config.RateLimit.CleanupInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	if s.deps.Metrics != nil && s.config.Metrics.Enabled {
		path := s.config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		s.router.GET(path, s.deps.Metrics.Handler())
	}

	v1 := s.router.Group("/api/v1")

	reports := v1.Group("/reports")
	{
		maxUpload := s.config.Upload.MaxFileSize + multipartOverhead
		reports.POST("/parse", s.rateLimit("parse", reportsRateLimitMessage), middleware.BodyLimit(maxUpload), s.handleParse)
		reports.POST("/analyze", s.rateLimit("analyze", reportsRateLimitMessage), s.handleAnalyze)
	}

	scans := v1.Group("/scan")
	{
		scans.POST("/discover", s.rateLimit("scan_discover", scanRateLimitMessage), s.handleDiscover)
		scans.POST("/analyze", s.rateLimit("scan_analyze", scanRateLimitMessage), s.handleScanAnalyze)
		scans.GET("/history", s.handleHistory)
	}

	v1.GET("/markers", s.handleListMarkers)
	v1.GET("/markers/:name", s.handleGetMarker)
	v1.POST("/markers/classify", s.handleClassify)
	v1.GET("/categories", s.handleCategories)
}

func (s *Server) rateLimit(group, message string) gin.HandlerFunc {
	var onReject func(*gin.Context)
	if s.deps.Metrics != nil {
		onReject = s.deps.Metrics.RateLimitRejected(group)
	}
	return s.limits[group].Middleware(message, onReject)
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	checks := make(map[string]string, len(s.deps.HealthChecks))
	for name, check := range s.deps.HealthChecks {
		if err := check(ctx); err != nil {
			checks[name] = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"version":   s.deps.Version,
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"checks":    checks,
	})
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Correlation-ID, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Correlation-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
