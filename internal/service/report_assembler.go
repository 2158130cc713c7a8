package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pedroganco/sanum/internal/domain"
)

const (
	// DefaultLabName is used when the report does not name its laboratory.
	DefaultLabName = "Laboratório desconhecido"

	missingBound = "—"
	dateLayout   = "2006-01-02"
)

// ReportAssembler turns raw extracted markers into a finished report.
type ReportAssembler struct {
	normalizer *MarkerNormalizer
	now        func() time.Time
	newID      func() string
}

// NewReportAssembler creates an assembler that resolves names with normalizer
func NewReportAssembler(normalizer *MarkerNormalizer) *ReportAssembler {
	return &ReportAssembler{
		normalizer: normalizer,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// Assemble builds a report from extraction output. Each marker is flagged
// against the reference bounds printed on the report, never the knowledge
// base ranges. Values and original names are copied unchanged.
func (a *ReportAssembler) Assemble(meta domain.ReportMetadata, raw []domain.RawMarker) *domain.Report {
	now := a.now()

	markers := make([]domain.Marker, 0, len(raw))
	for _, rm := range raw {
		markers = append(markers, a.assembleMarker(rm))
	}

	labName := strings.TrimSpace(meta.LabName)
	if labName == "" {
		labName = DefaultLabName
	}
	reportDate := strings.TrimSpace(meta.ReportDate)
	if reportDate == "" {
		reportDate = now.UTC().Format(dateLayout)
	}

	report := &domain.Report{
		ID:          a.newID(),
		LabName:     labName,
		ReportDate:  reportDate,
		PatientName: meta.PatientName,
		PatientAge:  meta.PatientAge,
		Markers:     markers,
		CreatedAt:   now.UTC(),
	}
	if meta.PatientSex != nil && meta.PatientSex.IsValid() {
		sex := *meta.PatientSex
		report.PatientSex = &sex
	}

	return report
}

func (a *ReportAssembler) assembleMarker(rm domain.RawMarker) domain.Marker {
	info, resolved := a.normalizer.Resolve(rm.Name)

	name := rm.Name
	unit := rm.Unit
	category := rm.Category
	if resolved {
		name = info.Name
		if info.Unit != "" {
			unit = info.Unit
		}
	}
	if !category.IsValid() {
		category = domain.OTHER
		if resolved {
			category = info.Category
		}
	}

	originalName := rm.OriginalName
	if originalName == "" {
		originalName = rm.Name
	}

	refText := rm.RefText
	if refText == "" {
		refText = FormatRefText(rm.RefMin, rm.RefMax)
	}

	return domain.Marker{
		ID:           a.newID(),
		Name:         name,
		OriginalName: originalName,
		Value:        rm.Value,
		Unit:         unit,
		RefMin:       rm.RefMin,
		RefMax:       rm.RefMax,
		RefText:      refText,
		Category:     category,
		Flag:         ClassifyFlag(rm.Value, rm.RefMin, rm.RefMax),
	}
}

// FormatRefText renders reference bounds as "min - max", using "—" for a
// missing bound.
func FormatRefText(refMin, refMax *float64) string {
	return formatBound(refMin) + " - " + formatBound(refMax)
}

func formatBound(v *float64) string {
	if v == nil {
		return missingBound
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
