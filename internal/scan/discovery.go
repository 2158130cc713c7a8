package scan

import (
	"regexp"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

// LinkDiscoverer finds social profile links in raw HTML using a table of
// platform rules. It holds no mutable state and is safe for concurrent use.
type LinkDiscoverer struct {
	rules []PlatformRule
}

// NewLinkDiscoverer creates a discoverer over rules. A nil slice selects
// DefaultRules.
func NewLinkDiscoverer(rules []PlatformRule) *LinkDiscoverer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &LinkDiscoverer{rules: rules}
}

// Discover returns at most one link per platform, in rule order. For each
// platform the first candidate that survives the noise filters and the
// platform's validator is kept.
func (d *LinkDiscoverer) Discover(html string) []domain.PlatformLink {
	links := make([]domain.PlatformLink, 0, len(d.rules))

	for _, rule := range d.rules {
		for _, candidate := range rule.Pattern.FindAllString(html, -1) {
			link := withScheme(candidate)
			if isNoisy(link, rule.Noise) {
				continue
			}
			if rule.Validate != nil && !rule.Validate(link) {
				continue
			}
			links = append(links, domain.PlatformLink{Platform: rule.Platform, URL: link})
			break
		}
	}

	return links
}

// withScheme prefixes https:// to a candidate that was matched without one.
func withScheme(candidate string) string {
	if strings.HasPrefix(strings.ToLower(candidate), "http") {
		return candidate
	}
	return "https://" + candidate
}

func isNoisy(link string, platformNoise []*regexp.Regexp) bool {
	for _, re := range genericNoise {
		if re.MatchString(link) {
			return true
		}
	}
	for _, re := range platformNoise {
		if re.MatchString(link) {
			return true
		}
	}
	return false
}

var defaultDiscoverer = NewLinkDiscoverer(nil)

// Discover runs the default platform rules over html.
func Discover(html string) []domain.PlatformLink {
	return defaultDiscoverer.Discover(html)
}
