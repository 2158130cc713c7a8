package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/pedroganco/sanum/internal/domain"
)

// DefaultUserAgent identifies scan requests to the sites being scanned.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SocialMediaScan/1.0; +https://sanum.pt)"

const (
	defaultFetchTimeout = 10 * time.Second
	defaultMaxBodyBytes = 5 << 20
)

// HTTPFetcher downloads web pages for scanning.
type HTTPFetcher struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
}

// NewHTTPFetcher creates a fetcher. Zero values in config select a 10s
// timeout, DefaultUserAgent and a 5 MiB body cap.
func NewHTTPFetcher(config domain.FetcherConfig) *HTTPFetcher {
	if config.Timeout <= 0 {
		config.Timeout = defaultFetchTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &HTTPFetcher{
		httpClient:   &http.Client{Timeout: config.Timeout},
		userAgent:    config.UserAgent,
		maxBodyBytes: config.MaxBodyBytes,
	}
}

// Fetch returns the body of url decoded to UTF-8. Network failures and
// non-2xx responses wrap domain.ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.httpClient.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, f.maxBodyBytes)
	reader, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%w: decoding body: %v", domain.ErrFetchFailed, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}
	return string(data), nil
}
