package domain

import "time"

// Platform names a social network the scanner knows how to detect.
type Platform string

const (
	INSTAGRAM       Platform = "Instagram"
	FACEBOOK        Platform = "Facebook"
	LINKEDIN        Platform = "LinkedIn"
	TWITTER         Platform = "Twitter"
	X               Platform = "X"
	TIKTOK          Platform = "TikTok"
	YOUTUBE         Platform = "YouTube"
	PINTEREST       Platform = "Pinterest"
	GOOGLE_BUSINESS Platform = "Google Business"
)

// Platforms lists every platform in discovery priority order.
var Platforms = []Platform{
	INSTAGRAM, FACEBOOK, LINKEDIN, TWITTER, X, TIKTOK, YOUTUBE, PINTEREST, GOOGLE_BUSINESS,
}

// IsValid reports whether p is a known platform.
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// Tone is the coarse voice classification of a website's copy.
type Tone string

const (
	PROFESSIONAL Tone = "Professional"
	CASUAL       Tone = "Casual/Friendly"
	PLAYFUL      Tone = "Playful"
	NEUTRAL      Tone = "Neutral"
)

// PlatformLink is a profile URL discovered for one platform.
type PlatformLink struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// WebsiteMetadata summarizes the copy and branding of a homepage.
type WebsiteMetadata struct {
	HeroText        string   `json:"heroText"`
	Tagline         string   `json:"tagline"`
	MetaDescription string   `json:"metaDescription"`
	OGDescription   string   `json:"ogDescription"`
	DominantColors  []string `json:"dominantColors"`
	DetectedTone    Tone     `json:"detectedTone"`
}

// ScanResult is the outcome of discovering a website's social presence.
type ScanResult struct {
	URL          string          `json:"url"`
	BusinessName string          `json:"businessName"`
	Platforms    []PlatformLink  `json:"platforms"`
	WebsiteData  WebsiteMetadata `json:"websiteData"`
	Excerpt      string          `json:"excerpt,omitempty"`
	ScannedAt    time.Time       `json:"scannedAt"`
}

// PlatformMetrics are the model's rough estimates for a profile.
type PlatformMetrics struct {
	Followers  string `json:"followers,omitempty"`
	Posts      string `json:"posts,omitempty"`
	Engagement string `json:"engagement,omitempty"`
	LastPost   string `json:"lastPost,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
}

// Checkmarks groups findings into done well, to fix, and to reflect on.
type Checkmarks struct {
	Good    []string `json:"good"`
	Bad     []string `json:"bad"`
	Reflect []string `json:"reflect"`
}

// PlatformAnalysis is the per-platform part of a social analysis.
type PlatformAnalysis struct {
	Name       string           `json:"name"`
	URL        string           `json:"url"`
	Handle     string           `json:"handle,omitempty"`
	Score      int              `json:"score"`
	Metrics    *PlatformMetrics `json:"metrics,omitempty"`
	Checkmarks Checkmarks       `json:"checkmarks"`
	QuickWin   string           `json:"quickWin"`
}

// SocialAnalysis is the full assessment of a business's social presence.
type SocialAnalysis struct {
	URL                 string             `json:"url"`
	BusinessName        string             `json:"businessName"`
	OverallScore        int                `json:"overallScore"`
	OverallInsight      string             `json:"overallInsight"`
	DetectedPositioning string             `json:"detectedPositioning"`
	DetectedTone        string             `json:"detectedTone"`
	VisualConsistency   string             `json:"visualConsistency"`
	Platforms           []PlatformAnalysis `json:"platforms"`
	MissingPlatforms    []string           `json:"missingPlatforms"`
	AlignmentScore      *int               `json:"alignmentScore,omitempty"`
	AlignmentInsight    string             `json:"alignmentInsight,omitempty"`
}

// SocialAnalysisRequest carries what the caller already knows about a site.
type SocialAnalysisRequest struct {
	URL          string           `json:"url"`
	BusinessName string           `json:"businessName"`
	Platforms    []PlatformLink   `json:"platforms"`
	WebsiteData  *WebsiteMetadata `json:"websiteData,omitempty"`
	Excerpt      string           `json:"excerpt,omitempty"`
	UserGoal     string           `json:"userGoal,omitempty"`
	UserAudience string           `json:"userAudience,omitempty"`
}

// ScanRecord is the summary of a discovery kept in scan history.
type ScanRecord struct {
	ID           int64      `json:"id"`
	URL          string     `json:"url"`
	BusinessName string     `json:"businessName"`
	Platforms    []Platform `json:"platforms"`
	DetectedTone Tone       `json:"detectedTone"`
	ScannedAt    time.Time  `json:"scannedAt"`
}
