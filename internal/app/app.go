// Package app assembles the Sanum services from configuration. Both the HTTP
// server and the command line tool are built on it.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/pedroganco/sanum/internal/api"
	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/history"
	"github.com/pedroganco/sanum/internal/knowledge"
	"github.com/pedroganco/sanum/internal/scan"
	"github.com/pedroganco/sanum/internal/service"
	"github.com/pedroganco/sanum/pkg/external"
)

// App holds the wired services and the resources that must be released on
// shutdown.
type App struct {
	Knowledge *knowledge.KnowledgeBase
	Reports   *service.ReportService
	Scans     *scan.Service
	LLM       *external.LLMClient
	History   domain.ScanHistory
	Pruner    *history.Pruner

	healthChecks map[string]api.HealthCheck
	closers      []func() error
	logger       *logrus.Logger
}

// Options toggles the optional parts of Build.
type Options struct {
	// SkipHistory leaves scans unrecorded regardless of configuration.
	SkipHistory bool
	// StartPruner schedules history retention. Only long-running processes
	// want this.
	StartPruner bool
}

// Build creates every service described by config.
func Build(ctx context.Context, config *domain.Config, logger *logrus.Logger, opts Options) (*App, error) {
	a := &App{
		Knowledge:    knowledge.Default(),
		healthChecks: make(map[string]api.HealthCheck),
		logger:       logger,
	}

	for _, c := range a.Knowledge.Collisions() {
		logger.WithFields(logrus.Fields{
			"key":    c.Key,
			"winner": c.Winner,
			"loser":  c.Loser,
		}).Debug("Marker alias collision")
	}

	extractor, err := external.NewTextExtractor(logger, config.PDF.Extractor, config.PDF.PdftotextPath)
	if err != nil {
		return nil, err
	}

	a.LLM = external.NewLLMClient(logger, external.LLMClientConfig{
		Provider:          config.LLM.Provider,
		BaseURL:           config.LLM.BaseURL,
		APIKey:            config.LLM.APIKey,
		Model:             config.LLM.Model,
		Timeout:           config.LLM.Timeout,
		RequestsPerSecond: config.LLM.RequestsPerSecond,
	})
	if config.LLM.APIKey == "" {
		logger.Warn("No LLM API key configured; parsing and analysis will be unavailable")
	}
	a.healthChecks["llm"] = func(context.Context) error {
		if a.LLM.BreakerState() == gobreaker.StateOpen {
			return errors.New("circuit breaker open")
		}
		return nil
	}

	a.Reports = service.NewReportService(logger, extractor, a.LLM,
		service.NewReportAssembler(service.NewMarkerNormalizer(a.Knowledge)),
		service.ReportServiceConfig{
			MinTextLength:       config.Upload.MinTextLength,
			ExtractionMaxTokens: config.LLM.MaxTokens,
		})

	cache := a.buildCache(ctx, config.Cache)

	var store domain.ScanHistory
	if config.History.Enabled && !opts.SkipHistory {
		store, err = history.Open(ctx, config.History, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to open scan history: %w", err)
		}
		a.History = store
		a.closers = append(a.closers, store.Close)

		if opts.StartPruner {
			a.Pruner, err = history.NewPruner(logger, store, config.History.Retention, config.History.PruneSchedule)
			if err != nil {
				a.Close()
				return nil, err
			}
			a.Pruner.Start()
			a.closers = append(a.closers, func() error {
				a.Pruner.Stop()
				return nil
			})
		}
	}

	a.Scans = scan.NewService(logger, external.NewHTTPFetcher(config.Fetcher), a.LLM, cache, store, scan.ServiceConfig{
		CacheTTL:          config.Cache.TTL,
		AnalysisMaxTokens: config.LLM.MaxTokens,
	})

	return a, nil
}

// buildCache returns the in-process cache, fronting Redis when configured.
// An unreachable Redis degrades to the in-process cache alone.
func (a *App) buildCache(ctx context.Context, config domain.CacheConfig) domain.ScanCache {
	memory := external.NewMemoryCache(config.MemorySize, config.TTL)
	if config.Backend != "redis" {
		return memory
	}

	redisCache, err := external.NewRedisCache(ctx, config.RedisURL, config.TTL)
	if err != nil {
		a.logger.WithError(err).Warn("Redis unavailable, using in-memory scan cache")
		return memory
	}
	a.closers = append(a.closers, redisCache.Close)
	a.healthChecks["cache"] = redisCache.Ping
	a.logger.Info("Scan cache using Redis")

	return external.NewTieredCache(a.logger, memory, redisCache)
}

// HealthChecks returns the probes served on /health.
func (a *App) HealthChecks() map[string]api.HealthCheck {
	return a.healthChecks
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
