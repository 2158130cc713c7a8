package scan

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

// NormalizeURL trims raw and prepends https:// when it has no http(s) scheme.
func NormalizeURL(raw string) string {
	normalized := strings.TrimSpace(raw)
	lower := strings.ToLower(normalized)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		normalized = "https://" + normalized
	}
	return normalized
}

// ValidateURL checks that raw is an absolute http or https URL with a host.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", domain.ErrInvalidURL)
	}
	return u, nil
}
