package scan

import (
	"regexp"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

// PlatformRule describes how to find and accept profile links for one
// platform. Pattern finds candidate URL substrings in raw HTML, Noise
// rejects known non-profile links and Validate applies structural checks
// to a candidate that survived the noise filters.
type PlatformRule struct {
	Platform domain.Platform
	Pattern  *regexp.Regexp
	Noise    []*regexp.Regexp
	Validate func(url string) bool
}

// genericNoise rejects links that are never profile pages, whatever the
// platform: legal pages, share and intent endpoints, widgets and searches.
var genericNoise = compileAll(
	`(?i)privacy`,
	`(?i)policy`,
	`(?i)terms`,
	`(?i)sharer\.php`,
	`(?i)sharer`,
	`(?i)share`,
	`(?i)intent/tweet`,
	`(?i)widgets`,
	`(?i)plugins`,
	`(?i)embed`,
	`(?i)dialog`,
	`(?i)hashtag`,
	`(?i)explore`,
	`(?i)search`,
	// Numeric-only last segments are years or tracking IDs, not handles.
	`/\d+/?$`,
)

var (
	facebookNoise = compileAll(
		`(?i)facebook\.com/pages/`,
		`(?i)facebook\.com/profile\.php`,
		`(?i)facebook\.com/groups`,
		`(?i)facebook\.com/events`,
		`(?i)facebook\.com/photo`,
		`(?i)facebook\.com/watch`,
	)
	instagramNoise = compileAll(
		`(?i)instagram\.com/p/`,
		`(?i)instagram\.com/reel/`,
		`(?i)instagram\.com/tv/`,
		`(?i)instagram\.com/explore`,
	)
	youtubeNoise = compileAll(
		`(?i)youtube\.com/watch`,
		`(?i)youtube\.com/embed`,
		`(?i)youtube\.com/shorts`,
	)
)

var (
	facebookHandle  = regexp.MustCompile(`(?i)facebook\.com/([^/?#]+)`)
	instagramHandle = regexp.MustCompile(`(?i)instagram\.com/([^/?#]+)`)
	numericHandle   = regexp.MustCompile(`^\d+$`)
	startsWithAlpha = regexp.MustCompile(`^[a-zA-Z]`)
)

var facebookReserved = setOf(
	"pages", "profile.php", "groups", "events", "photo", "watch",
	"help", "about", "privacy", "terms", "login", "signup",
	"marketplace", "gaming", "settings", "notifications",
)

var instagramReserved = setOf("p", "reel", "tv", "explore", "accounts", "direct")

var googleBusinessMarkers = []string{
	"google.com/maps/place",
	"goo.gl/maps",
	"g.page/",
	"business.google.com",
	"maps.google.com/?cid=",
}

// DefaultRules returns the platform rules in discovery priority order.
func DefaultRules() []PlatformRule {
	return []PlatformRule{
		{
			Platform: domain.INSTAGRAM,
			Pattern:  regexp.MustCompile(`(?i)(?:www\.)?instagram\.com/([a-zA-Z0-9._]+)`),
			Noise:    instagramNoise,
			Validate: validInstagram,
		},
		{
			Platform: domain.FACEBOOK,
			Pattern:  regexp.MustCompile(`(?i)(?:www\.)?facebook\.com/([a-zA-Z][a-zA-Z0-9._-]*)`),
			Noise:    facebookNoise,
			Validate: validFacebook,
		},
		{
			Platform: domain.LINKEDIN,
			Pattern:  regexp.MustCompile(`(?i)linkedin\.com/(company|in)/([a-zA-Z0-9-]+)`),
		},
		{
			Platform: domain.TWITTER,
			Pattern:  regexp.MustCompile(`(?i)twitter\.com/([a-zA-Z0-9_]+)`),
		},
		{
			// The word boundary keeps hosts such as dropbox.com from
			// matching as x.com.
			Platform: domain.X,
			Pattern:  regexp.MustCompile(`(?i)\bx\.com/([a-zA-Z0-9_]+)`),
		},
		{
			Platform: domain.TIKTOK,
			Pattern:  regexp.MustCompile(`(?i)tiktok\.com/@([a-zA-Z0-9._]+)`),
		},
		{
			Platform: domain.YOUTUBE,
			Pattern:  regexp.MustCompile(`(?i)youtube\.com/(?:c/|channel/|user/|@)?([a-zA-Z0-9_-]+)`),
			Noise:    youtubeNoise,
			Validate: validYouTube,
		},
		{
			Platform: domain.PINTEREST,
			Pattern:  regexp.MustCompile(`(?i)pinterest\.(com|pt)/([a-zA-Z0-9_]+)`),
		},
		{
			Platform: domain.GOOGLE_BUSINESS,
			Pattern:  regexp.MustCompile(`(?i)(?:google\.com/maps/place/|goo\.gl/maps/|g\.page/|business\.google\.com/|maps\.google\.com/\?cid=)([^"'\s<>&]+)`),
			Validate: validGoogleBusiness,
		},
	}
}

func validFacebook(url string) bool {
	m := facebookHandle.FindStringSubmatch(url)
	if m == nil {
		return false
	}
	handle := m[1]
	switch {
	case numericHandle.MatchString(handle):
		return false
	case len(handle) <= 3:
		return false
	case facebookReserved[strings.ToLower(handle)]:
		return false
	}
	return startsWithAlpha.MatchString(handle)
}

func validInstagram(url string) bool {
	m := instagramHandle.FindStringSubmatch(url)
	if m == nil {
		return false
	}
	return !instagramReserved[strings.ToLower(m[1])]
}

func validYouTube(url string) bool {
	lower := strings.ToLower(url)
	return !strings.Contains(lower, "/watch") &&
		!strings.Contains(lower, "/embed") &&
		!strings.Contains(lower, "/shorts")
}

func validGoogleBusiness(url string) bool {
	lower := strings.ToLower(url)
	for _, marker := range googleBusinessMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func setOf(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
