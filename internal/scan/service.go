package scan

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/pkg/external"
)

// Fallbacks for fields the model leaves out of a social analysis.
const (
	DefaultOverallScore        = 50
	DefaultOverallInsight      = "Analysis complete."
	DefaultDetectedPositioning = "Unknown business positioning"
	DefaultUnknown             = "Unknown"
)

const cacheKeyPrefix = "scan:discover:"

// ServiceConfig tunes the scan service.
type ServiceConfig struct {
	CacheTTL          time.Duration
	ExcerptLength     int
	AnalysisMaxTokens int
}

// Service discovers the social presence of a website and asks the language
// model to review it. Cache and history are optional.
type Service struct {
	logger     *logrus.Logger
	fetcher    domain.HTMLFetcher
	llm        domain.LLMClient
	cache      domain.ScanCache
	history    domain.ScanHistory
	discoverer *LinkDiscoverer
	config     ServiceConfig
	now        func() time.Time
}

// NewService creates a scan service.
func NewService(logger *logrus.Logger, fetcher domain.HTMLFetcher, llm domain.LLMClient,
	cache domain.ScanCache, history domain.ScanHistory, config ServiceConfig) *Service {
	if config.CacheTTL <= 0 {
		config.CacheTTL = time.Hour
	}
	if config.ExcerptLength <= 0 {
		config.ExcerptLength = DefaultExcerptLength
	}
	if config.AnalysisMaxTokens <= 0 {
		config.AnalysisMaxTokens = 4096
	}
	return &Service{
		logger:     logger,
		fetcher:    fetcher,
		llm:        llm,
		cache:      cache,
		history:    history,
		discoverer: NewLinkDiscoverer(nil),
		config:     config,
		now:        time.Now,
	}
}

// Discover fetches rawURL and reports its business name, social links,
// homepage metadata and a readable excerpt. It fails with
// domain.ErrNoPlatforms when the page links to no known platform.
func (s *Service) Discover(ctx context.Context, rawURL string) (*domain.ScanResult, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidURL)
	}
	normalized := NormalizeURL(rawURL)
	pageURL, err := ValidateURL(normalized)
	if err != nil {
		return nil, err
	}

	key := cacheKeyPrefix + normalized
	if s.cache != nil {
		var cached domain.ScanResult
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.WithError(err).WithField("url", normalized).Warn("Scan cache read failed")
		} else if hit {
			s.logger.WithField("url", normalized).Debug("Scan cache hit")
			return &cached, nil
		}
	}

	page, err := s.fetcher.Fetch(ctx, normalized)
	if err != nil {
		return nil, err
	}

	platforms := s.discoverer.Discover(page)
	if len(platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}

	result := &domain.ScanResult{
		URL:          normalized,
		BusinessName: ExtractBusinessName(page, normalized),
		Platforms:    platforms,
		WebsiteData:  ExtractMetadata(page),
		ScannedAt:    s.now().UTC(),
	}

	excerpt, err := ExtractExcerpt(page, pageURL, s.config.ExcerptLength)
	if err != nil {
		s.logger.WithError(err).WithField("url", normalized).Debug("No readable excerpt")
	} else {
		result.Excerpt = excerpt
	}

	s.logger.WithFields(logrus.Fields{
		"url":           normalized,
		"business_name": result.BusinessName,
		"platforms":     len(platforms),
		"tone":          result.WebsiteData.DetectedTone,
	}).Info("Website scanned")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.config.CacheTTL); err != nil {
			s.logger.WithError(err).WithField("url", normalized).Warn("Scan cache write failed")
		}
	}
	s.record(ctx, result)

	return result, nil
}

func (s *Service) record(ctx context.Context, result *domain.ScanResult) {
	if s.history == nil {
		return
	}
	names := make([]domain.Platform, len(result.Platforms))
	for i, p := range result.Platforms {
		names[i] = p.Platform
	}
	err := s.history.Record(ctx, &domain.ScanRecord{
		URL:          result.URL,
		BusinessName: result.BusinessName,
		Platforms:    names,
		DetectedTone: result.WebsiteData.DetectedTone,
		ScannedAt:    result.ScannedAt,
	})
	if err != nil {
		s.logger.WithError(err).WithField("url", result.URL).Warn("Failed to record scan history")
	}
}

// History lists recorded scans, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]*domain.ScanRecord, error) {
	if s.history == nil {
		return []*domain.ScanRecord{}, nil
	}
	return s.history.List(ctx, limit, offset)
}

// Analyze asks the language model to review the platforms in req and fills
// in anything the model omitted.
func (s *Service) Analyze(ctx context.Context, req *domain.SocialAnalysisRequest) (*domain.SocialAnalysis, error) {
	if req == nil || strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidURL)
	}
	if len(req.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}

	completion, err := s.llm.Complete(ctx, BuildAnalysisPrompt(req), s.config.AnalysisMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("social analysis: %w", err)
	}

	var raw rawSocialAnalysis
	if err := external.DecodeJSONObject(completion, &raw); err != nil {
		return nil, fmt.Errorf("social analysis: %w", err)
	}

	analysis := raw.normalize(req)

	s.logger.WithFields(logrus.Fields{
		"url":           req.URL,
		"platforms":     len(analysis.Platforms),
		"overall_score": analysis.OverallScore,
	}).Info("Social presence analyzed")

	return analysis, nil
}

// MissingPlatforms lists the known platforms absent from found. X is never
// reported since Twitter already stands for it.
func MissingPlatforms(found []domain.PlatformLink) []string {
	have := make(map[domain.Platform]bool, len(found))
	for _, p := range found {
		have[p.Platform] = true
	}
	missing := []string{}
	for _, p := range domain.Platforms {
		if p == domain.X || have[p] {
			continue
		}
		missing = append(missing, p.String())
	}
	return missing
}

// rawSocialAnalysis mirrors what the model returns, which is looser than
// domain.SocialAnalysis: scores may be fractional and some platforms come
// back with strengths/weaknesses instead of checkmarks.
type rawSocialAnalysis struct {
	DetectedPositioning string                `json:"detectedPositioning"`
	DetectedTone        string                `json:"detectedTone"`
	VisualConsistency   string                `json:"visualConsistency"`
	Platforms           []rawPlatformAnalysis `json:"platforms"`
	OverallScore        *float64              `json:"overallScore"`
	OverallInsight      string                `json:"overallInsight"`
	AlignmentScore      *float64              `json:"alignmentScore"`
	AlignmentInsight    string                `json:"alignmentInsight"`
}

type rawPlatformAnalysis struct {
	Name       string                  `json:"name"`
	URL        string                  `json:"url"`
	Handle     string                  `json:"handle"`
	Score      float64                 `json:"score"`
	Metrics    *domain.PlatformMetrics `json:"metrics"`
	Checkmarks *domain.Checkmarks      `json:"checkmarks"`
	Strengths  []string                `json:"strengths"`
	Weaknesses []string                `json:"weaknesses"`
	Reflect    []string                `json:"reflect"`
	QuickWin   string                  `json:"quickWin"`
}

func (r *rawSocialAnalysis) normalize(req *domain.SocialAnalysisRequest) *domain.SocialAnalysis {
	out := &domain.SocialAnalysis{
		URL:                 req.URL,
		BusinessName:        req.BusinessName,
		OverallScore:        DefaultOverallScore,
		OverallInsight:      orDefault(r.OverallInsight, DefaultOverallInsight),
		DetectedPositioning: orDefault(r.DetectedPositioning, DefaultDetectedPositioning),
		DetectedTone:        orDefault(r.DetectedTone, DefaultUnknown),
		VisualConsistency:   orDefault(r.VisualConsistency, DefaultUnknown),
		Platforms:           make([]domain.PlatformAnalysis, 0, len(r.Platforms)),
		MissingPlatforms:    MissingPlatforms(req.Platforms),
		AlignmentInsight:    r.AlignmentInsight,
	}
	if r.OverallScore != nil && *r.OverallScore != 0 {
		out.OverallScore = clampScore(*r.OverallScore)
	}
	if r.AlignmentScore != nil {
		score := clampScore(*r.AlignmentScore)
		out.AlignmentScore = &score
	}

	for _, p := range r.Platforms {
		out.Platforms = append(out.Platforms, p.normalize())
	}
	return out
}

func (p rawPlatformAnalysis) normalize() domain.PlatformAnalysis {
	var marks domain.Checkmarks
	if p.Checkmarks != nil {
		marks = *p.Checkmarks
	} else {
		marks = domain.Checkmarks{Good: p.Strengths, Bad: p.Weaknesses, Reflect: p.Reflect}
	}
	marks.Good = nonNil(marks.Good)
	marks.Bad = nonNil(marks.Bad)
	marks.Reflect = nonNil(marks.Reflect)

	return domain.PlatformAnalysis{
		Name:       p.Name,
		URL:        p.URL,
		Handle:     p.Handle,
		Score:      clampScore(p.Score),
		Metrics:    p.Metrics,
		Checkmarks: marks,
		QuickWin:   p.QuickWin,
	}
}

func clampScore(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
