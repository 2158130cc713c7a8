package domain

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	LLM         LLMConfig       `mapstructure:"llm"`
	Fetcher     FetcherConfig   `mapstructure:"fetcher"`
	Upload      UploadConfig    `mapstructure:"upload"`
	PDF         PDFConfig       `mapstructure:"pdf"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Cache       CacheConfig     `mapstructure:"cache"`
	History     HistoryConfig   `mapstructure:"history"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LLMConfig configures the language model collaborator.
type LLMConfig struct {
	Provider          string        `mapstructure:"provider"`
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"`
	MaxTokens         int           `mapstructure:"max_tokens"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// FetcherConfig configures website fetching for scans.
type FetcherConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// UploadConfig bounds lab report uploads.
type UploadConfig struct {
	MaxFileSize   int64 `mapstructure:"max_file_size"`
	MinTextLength int   `mapstructure:"min_text_length"`
}

// PDFConfig selects the text extraction backend.
type PDFConfig struct {
	Extractor     string `mapstructure:"extractor"`
	PdftotextPath string `mapstructure:"pdftotext_path"`
}

// RateLimitConfig holds the fixed-window limits per route group.
type RateLimitConfig struct {
	Window          time.Duration `mapstructure:"window"`
	Parse           int           `mapstructure:"parse"`
	Analyze         int           `mapstructure:"analyze"`
	Scan            int           `mapstructure:"scan"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CacheConfig represents scan cache configuration
type CacheConfig struct {
	Backend    string        `mapstructure:"backend"`
	RedisURL   string        `mapstructure:"redis_url"`
	TTL        time.Duration `mapstructure:"ttl"`
	MemorySize int           `mapstructure:"memory_size"`
}

// HistoryConfig configures the scan history store.
type HistoryConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Driver        string        `mapstructure:"driver"`
	SQLitePath    string        `mapstructure:"sqlite_path"`
	PostgresURL   string        `mapstructure:"postgres_url"`
	Retention     time.Duration `mapstructure:"retention"`
	PruneSchedule string        `mapstructure:"prune_schedule"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
