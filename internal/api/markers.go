package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/service"
)

type classifyRequest struct {
	Value  *float64 `json:"value"`
	RefMin *float64 `json:"refMin"`
	RefMax *float64 `json:"refMax"`
	Marker string   `json:"marker"`
	Sex    string   `json:"sex"`
}

type categorySummary struct {
	ID    domain.Category `json:"id"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

func (s *Server) handleListMarkers(c *gin.Context) {
	var markers []domain.MarkerInfo
	if raw := c.Query("category"); raw != "" {
		category := domain.Category(raw)
		if !category.IsValid() {
			s.failValidation(c, domain.NewValidationError("category", "Unknown category: "+raw, raw))
			return
		}
		markers = s.deps.Markers.ByCategory(category)
	} else {
		markers = s.deps.Markers.Entries()
	}
	if markers == nil {
		markers = []domain.MarkerInfo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"markers": markers,
		"count":   len(markers),
	})
}

func (s *Server) handleGetMarker(c *gin.Context) {
	name := c.Param("name")
	info, ok := s.deps.Markers.Lookup(name)
	if !ok {
		s.fail(c, domain.ErrResourceNotFound, "Marker not found: "+name, nil)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleCategories(c *gin.Context) {
	categories := make([]categorySummary, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		categories = append(categories, categorySummary{
			ID:    category,
			Label: category.Label(),
			Count: len(s.deps.Markers.ByCategory(category)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// handleClassify grades a value. Without explicit bounds the knowledge base
// reference for the named marker (and sex, when given) is used.
func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		s.failValidation(c, domain.NewValidationError("value", "A numeric value is required", nil))
		return
	}

	response := gin.H{}
	refMin, refMax := req.RefMin, req.RefMax
	if refMin == nil && refMax == nil && req.Marker != "" {
		info, ok := s.deps.Markers.Lookup(req.Marker)
		if !ok {
			s.fail(c, domain.ErrResourceNotFound, "Marker not found: "+req.Marker, nil)
			return
		}

		var sex domain.Sex
		if req.Sex != "" {
			parsed, err := domain.ParseSex(req.Sex)
			if err != nil {
				s.failValidation(c, domain.NewValidationError("sex", "Sex must be M or F", req.Sex))
				return
			}
			sex = parsed
		}
		if ref, ok := service.SelectReference(info, sex); ok {
			refMin, refMax = ref.Min, ref.Max
		}
		response["marker"] = info.Name
		response["unit"] = info.Unit
	}

	flag := service.ClassifyFlag(*req.Value, refMin, refMax)
	response["value"] = *req.Value
	response["flag"] = flag
	response["emoji"] = flag.Emoji()
	response["refMin"] = refMin
	response["refMax"] = refMax
	response["refText"] = service.FormatRefText(refMin, refMax)

	c.JSON(http.StatusOK, response)
}
