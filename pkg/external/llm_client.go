package external

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/pedroganco/sanum/internal/domain"
)

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

const (
	defaultAnthropicURL   = "https://api.anthropic.com"
	defaultOpenAIURL      = "https://api.openai.com"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	anthropicVersion      = "2023-06-01"
)

// LLMClientConfig configures an LLMClient.
type LLMClientConfig struct {
	Provider          string
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// LLMClient sends single-turn prompts to a chat model. Requests are paced
// by a token bucket and guarded by a circuit breaker so a failing provider
// is not hammered.
type LLMClient struct {
	config     LLMClientConfig
	httpClient *http.Client
	rateLimit  *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// NewLLMClient creates a client for the configured provider.
func NewLLMClient(logger *logrus.Logger, config LLMClientConfig) *LLMClient {
	if config.Provider == "" {
		config.Provider = ProviderAnthropic
	}
	if config.BaseURL == "" {
		if config.Provider == ProviderOpenAI {
			config.BaseURL = defaultOpenAIURL
		} else {
			config.BaseURL = defaultAnthropicURL
		}
	}
	// OpenAI-compatible servers name their own models, so only Anthropic
	// gets a default.
	if config.Model == "" && config.Provider == ProviderAnthropic {
		config.Model = defaultAnthropicModel
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 2
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm-" + config.Provider,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &LLMClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		rateLimit:  rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
		breaker:    breaker,
		logger:     logger,
	}
}

// Complete sends prompt as a single user message and returns the text of
// the reply. Transport and provider failures wrap domain.ErrLLMUnavailable.
func (c *LLMClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.config.APIKey == "" && c.config.Provider == ProviderAnthropic {
		return "", domain.ErrLLMNotConfigured
	}
	if c.config.Model == "" {
		return "", fmt.Errorf("%w: no model set", domain.ErrLLMNotConfigured)
	}

	if err := c.rateLimit.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed: %w", err)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		if c.config.Provider == ProviderOpenAI {
			return c.completeOpenAI(ctx, prompt, maxTokens)
		}
		return c.completeAnthropic(ctx, prompt, maxTokens)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit breaker open", domain.ErrLLMUnavailable)
		}
		return "", err
	}

	text := result.(string)
	c.logger.WithFields(logrus.Fields{
		"provider":    c.config.Provider,
		"model":       c.config.Model,
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(text),
	}).Debug("LLM completion received")

	return text, nil
}

// BreakerState reports the circuit breaker state for health checks.
func (c *LLMClient) BreakerState() gobreaker.State {
	return c.breaker.State()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *LLMClient) completeAnthropic(ctx context.Context, prompt string, maxTokens int) (string, error) {
	headers := map[string]string{
		"x-api-key":         c.config.APIKey,
		"anthropic-version": anthropicVersion,
	}

	var resp anthropicResponse
	if err := c.post(ctx, "/v1/messages", headers, prompt, maxTokens, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%w: %s: %s", domain.ErrLLMUnavailable, resp.Error.Type, resp.Error.Message)
	}
	if len(resp.Content) == 0 || resp.Content[0].Type != "text" {
		return "", nil
	}
	return resp.Content[0].Text, nil
}

func (c *LLMClient) completeOpenAI(ctx context.Context, prompt string, maxTokens int) (string, error) {
	headers := map[string]string{}
	if c.config.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.config.APIKey
	}

	var resp openAIResponse
	if err := c.post(ctx, "/v1/chat/completions", headers, prompt, maxTokens, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrLLMUnavailable, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *LLMClient) post(ctx context.Context, path string, headers map[string]string, prompt string, maxTokens int, out interface{}) error {
	body, err := json.Marshal(chatRequest{
		Model:     c.config.Model,
		MaxTokens: maxTokens,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrLLMUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", domain.ErrLLMUnavailable, resp.StatusCode, truncate(string(data), 200))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrLLMUnavailable, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
