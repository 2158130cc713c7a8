package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/history"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(t *testing.T) *domain.Config {
	return &domain.Config{
		LLM:     domain.LLMConfig{Provider: "anthropic", MaxTokens: 4096, Timeout: time.Second},
		Fetcher: domain.FetcherConfig{Timeout: time.Second, MaxBodyBytes: 1 << 20},
		Upload:  domain.UploadConfig{MaxFileSize: 10 << 20, MinTextLength: 50},
		PDF:     domain.PDFConfig{Extractor: "native"},
		Cache:   domain.CacheConfig{Backend: "memory", TTL: time.Hour, MemorySize: 10},
		History: domain.HistoryConfig{
			Enabled:       true,
			Driver:        history.DriverSQLite,
			SQLitePath:    filepath.Join(t.TempDir(), "history.db"),
			Retention:     24 * time.Hour,
			PruneSchedule: history.DefaultPruneSchedule,
		},
	}
}

func TestBuild(t *testing.T) {
	a, err := Build(context.Background(), testConfig(t), testLogger(), Options{StartPruner: true})
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Knowledge)
	assert.NotNil(t, a.Reports)
	assert.NotNil(t, a.Scans)
	assert.NotNil(t, a.History)
	assert.NotNil(t, a.Pruner)

	checks := a.HealthChecks()
	require.Contains(t, checks, "llm")
	assert.NoError(t, checks["llm"](context.Background()))
	assert.NotContains(t, checks, "cache")

	records, err := a.Scans.History(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuild_SkipHistory(t *testing.T) {
	a, err := Build(context.Background(), testConfig(t), testLogger(), Options{SkipHistory: true})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.History)
	assert.Nil(t, a.Pruner)
}

func TestBuild_UnreachableRedisFallsBack(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisURL = "not a redis url"

	a, err := Build(context.Background(), cfg, testLogger(), Options{SkipHistory: true})
	require.NoError(t, err)
	defer a.Close()

	assert.NotContains(t, a.HealthChecks(), "cache")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
	}{
		{"unknown extractor", func(c *domain.Config) { c.PDF.Extractor = "ocr" }},
		{"unknown history driver", func(c *domain.Config) { c.History.Driver = "mongo" }},
		{"bad prune schedule", func(c *domain.Config) { c.History.PruneSchedule = "whenever" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			_, err := Build(context.Background(), cfg, testLogger(), Options{StartPruner: true})
			assert.Error(t, err)
		})
	}
}

func TestClose_Idempotent(t *testing.T) {
	a, err := Build(context.Background(), testConfig(t), testLogger(), Options{})
	require.NoError(t, err)

	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
