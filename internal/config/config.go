package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/pedroganco/sanum/internal/domain"
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	mu     sync.RWMutex
	v      *viper.Viper
	config *domain.Config
}

// NewManager loads config.yaml from the usual search paths, the SANUM_*
// environment and built-in defaults, in increasing order of precedence
// for the environment.
func NewManager() (*Manager, error) {
	return newManager("")
}

// NewManagerFromFile is like NewManager but reads the given file instead of
// searching for config.yaml. The file must exist.
func NewManagerFromFile(path string) (*Manager, error) {
	return newManager(path)
}

func newManager(path string) (*Manager, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/sanum/")
	}

	v.SetEnvPrefix("SANUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	m := &Manager{v: v}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	// Config file is optional when searching; defaults and env still apply.
	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := m.v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.mu.Lock()
	m.config = config
	m.mu.Unlock()
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("llm.timeout", "120s")
	v.SetDefault("llm.requests_per_second", 2)

	v.SetDefault("fetcher.timeout", "10s")
	v.SetDefault("fetcher.user_agent", "")
	v.SetDefault("fetcher.max_body_bytes", 5<<20)

	v.SetDefault("upload.max_file_size", 10<<20)
	v.SetDefault("upload.min_text_length", 50)

	v.SetDefault("pdf.extractor", "auto")
	v.SetDefault("pdf.pdftotext_path", "pdftotext")

	v.SetDefault("rate_limit.window", "15m")
	v.SetDefault("rate_limit.parse", 10)
	v.SetDefault("rate_limit.analyze", 20)
	v.SetDefault("rate_limit.scan", 20)
	v.SetDefault("rate_limit.cleanup_interval", "5m")

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.memory_size", 1000)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.driver", "sqlite")
	v.SetDefault("history.sqlite_path", filepath.Join(DefaultDataDir(), "history.db"))
	v.SetDefault("history.postgres_url", "")
	v.SetDefault("history.retention", "720h")
	v.SetDefault("history.prune_schedule", "0 3 * * *")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// DefaultDataDir is where local state such as the SQLite history lives.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sanum"
	}
	return filepath.Join(homeDir, ".sanum")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch reloads the configuration whenever the config file changes and
// passes the new value to onChange. Invalid files are reported through
// onError and the previous configuration is kept. Without a config file
// there is nothing to watch.
func (m *Manager) Watch(onChange func(*domain.Config), onError func(error)) {
	if m.v.ConfigFileUsed() == "" {
		return
	}
	m.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		previous := m.GetConfig()
		if err := m.loadConfig(); err != nil {
			m.restore(previous)
			if onError != nil {
				onError(err)
			}
			return
		}
		if err := m.Validate(); err != nil {
			m.restore(previous)
			if onError != nil {
				onError(err)
			}
			return
		}
		if onChange != nil {
			onChange(m.GetConfig())
		}
	})
	m.v.WatchConfig()
}

func (m *Manager) restore(config *domain.Config) {
	m.mu.Lock()
	m.config = config
	m.mu.Unlock()
}

// ConfigFileUsed returns the path of the loaded config file, or "" when
// running on defaults and environment only.
func (m *Manager) ConfigFileUsed() string {
	return m.v.ConfigFileUsed()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.GetConfig()

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}
	if f := config.Logging.Format; f != "json" && f != "text" {
		return fmt.Errorf("invalid log format: %s", f)
	}

	switch config.LLM.Provider {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("invalid LLM provider: %s", config.LLM.Provider)
	}
	if config.LLM.Provider == "openai" && config.LLM.Model == "" {
		return fmt.Errorf("llm.model is required for the openai provider")
	}
	if config.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}

	switch config.PDF.Extractor {
	case "auto", "pdftotext", "native":
	default:
		return fmt.Errorf("invalid PDF extractor: %s", config.PDF.Extractor)
	}

	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload.max_file_size must be positive")
	}

	rl := config.RateLimit
	if rl.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	if rl.Parse <= 0 || rl.Analyze <= 0 || rl.Scan <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}

	switch config.Cache.Backend {
	case "memory":
	case "redis":
		if config.Cache.RedisURL == "" {
			return fmt.Errorf("Redis URL is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("invalid cache backend: %s", config.Cache.Backend)
	}

	if config.History.Enabled {
		switch config.History.Driver {
		case "sqlite":
			if config.History.SQLitePath == "" {
				return fmt.Errorf("history.sqlite_path is required")
			}
		case "postgres":
			if config.History.PostgresURL == "" {
				return fmt.Errorf("history.postgres_url is required")
			}
		default:
			return fmt.Errorf("invalid history driver: %s", config.History.Driver)
		}
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(m.GetConfig().Environment) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(m.GetConfig().Environment)
	return env == "development" || env == "dev" || env == ""
}
