package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pedroganco/sanum/internal/domain"
)

const (
	msgURLRequired     = "URL is required"
	msgInvalidURL      = "Invalid URL format"
	msgNoAccounts      = "No social media accounts found"
	msgUnreachable     = "Couldn't reach that website. Is the URL correct?"
	msgScanFailed      = "Something went wrong while scanning the website"
	msgInvalidRequest  = "Invalid request data"
	msgNoPlatforms     = "No platforms to analyze"
	msgScanAnalyze     = "Something went wrong while analyzing social accounts"
	msgScanModelOff    = "Social analysis is temporarily unavailable. Try again later."
	msgHistoryFailed   = "Something went wrong while loading scan history"
	defaultHistorySize = 20
	maxHistorySize     = 100
)

type discoverRequest struct {
	URL string `json:"url"`
}

type scanAnalyzeRequest struct {
	URL          string                  `json:"url"`
	BusinessName string                  `json:"businessName"`
	Platforms    []domain.PlatformLink   `json:"platforms"`
	WebsiteData  *domain.WebsiteMetadata `json:"websiteData"`
	Excerpt      string                  `json:"excerpt"`
	UserGoal     string                  `json:"userGoal"`
	UserAudience string                  `json:"userAudience"`
}

func (s *Server) handleDiscover(c *gin.Context) {
	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.fail(c, domain.ErrInvalidInput, msgURLRequired, err)
		return
	}

	result, err := s.deps.Scans.Discover(c.Request.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidURL):
			s.fail(c, domain.ErrInvalidInput, msgInvalidURL, err)
		case errors.Is(err, domain.ErrNoPlatforms):
			s.fail(c, domain.ErrNoPlatformsFound, msgNoAccounts, err)
		case errors.Is(err, domain.ErrFetchFailed):
			s.fail(c, domain.ErrSiteUnreachable, msgUnreachable, err)
		default:
			s.fail(c, domain.ErrInternalServer, msgScanFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleScanAnalyze(c *gin.Context) {
	var req scanAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, domain.ErrInvalidInput, msgInvalidRequest, err)
		return
	}
	if strings.TrimSpace(req.URL) == "" || req.Platforms == nil {
		s.fail(c, domain.ErrInvalidInput, msgInvalidRequest, nil)
		return
	}
	if len(req.Platforms) == 0 {
		s.fail(c, domain.ErrInvalidInput, msgNoPlatforms, nil)
		return
	}

	analysis, err := s.deps.Scans.Analyze(c.Request.Context(), &domain.SocialAnalysisRequest{
		URL:          req.URL,
		BusinessName: req.BusinessName,
		Platforms:    req.Platforms,
		WebsiteData:  req.WebsiteData,
		Excerpt:      req.Excerpt,
		UserGoal:     req.UserGoal,
		UserAudience: req.UserAudience,
	})
	if err != nil {
		switch code, isModel := modelFailureCode(err); {
		case isModel && code == domain.ErrServiceUnavailable:
			s.fail(c, code, msgScanModelOff, err)
		case isModel:
			s.fail(c, code, msgScanAnalyze, err)
		default:
			s.fail(c, domain.ErrInternalServer, msgScanAnalyze, err)
		}
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := queryInt(c, "limit", defaultHistorySize)
	if limit <= 0 || limit > maxHistorySize {
		limit = defaultHistorySize
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := s.deps.Scans.History(c.Request.Context(), limit, offset)
	if err != nil {
		s.fail(c, domain.ErrInternalServer, msgHistoryFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scans":  records,
		"count":  len(records),
		"limit":  limit,
		"offset": offset,
	})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
