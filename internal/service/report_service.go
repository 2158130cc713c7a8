package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/pkg/external"
)

// DefaultMinTextLength is the shortest extracted text accepted as a readable
// report. Scanned or encrypted PDFs produce less.
const DefaultMinTextLength = 50

// ParseResult is a parsed report and the extraction method that read it.
type ParseResult struct {
	Report           *domain.Report `json:"report"`
	ExtractionMethod string         `json:"extractionMethod"`
}

// ReportServiceConfig tunes the report pipeline.
type ReportServiceConfig struct {
	MinTextLength       int
	ExtractionMaxTokens int
	AnalysisMaxTokens   int
}

// ReportService parses lab report PDFs and produces narrative analyses.
// Reports pass through memory only.
type ReportService struct {
	logger    *logrus.Logger
	extractor domain.TextExtractor
	llm       domain.LLMClient
	assembler *ReportAssembler
	config    ReportServiceConfig
}

// NewReportService creates a new report service
func NewReportService(
	logger *logrus.Logger,
	extractor domain.TextExtractor,
	llm domain.LLMClient,
	assembler *ReportAssembler,
	config ReportServiceConfig,
) *ReportService {
	if config.MinTextLength <= 0 {
		config.MinTextLength = DefaultMinTextLength
	}
	if config.ExtractionMaxTokens <= 0 {
		config.ExtractionMaxTokens = 4096
	}
	if config.AnalysisMaxTokens <= 0 {
		config.AnalysisMaxTokens = 2048
	}
	return &ReportService{
		logger:    logger,
		extractor: extractor,
		llm:       llm,
		assembler: assembler,
		config:    config,
	}
}

// Parse extracts the text of pdf, asks the model to structure it and
// assembles the resulting report.
func (s *ReportService) Parse(ctx context.Context, pdf io.Reader) (*ParseResult, error) {
	startTime := time.Now()

	text, method, err := s.extractor.ExtractText(ctx, pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < s.config.MinTextLength {
		return nil, fmt.Errorf("%w: %d characters", domain.ErrTextTooShort, n)
	}

	s.logger.WithFields(logrus.Fields{
		"extraction_method": method,
		"text_length":       len(text),
	}).Debug("Extracted report text")

	completion, err := s.llm.Complete(ctx, BuildExtractionPrompt(text), s.config.ExtractionMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to structure report: %w", err)
	}

	var extracted domain.ExtractedReport
	if err := external.DecodeJSONObject(completion, &extracted); err != nil {
		return nil, fmt.Errorf("failed to decode extracted report: %w", err)
	}

	report := s.assembler.Assemble(extracted.ReportMetadata, extracted.Markers)

	counts := report.FlagCounts()
	s.logger.WithFields(logrus.Fields{
		"markers":       len(report.Markers),
		"out_of_range":  len(report.Markers) - counts[domain.NORMAL],
		"processing_ms": time.Since(startTime).Milliseconds(),
	}).Info("Report parsed")

	return &ParseResult{Report: report, ExtractionMethod: method}, nil
}

// Analyze asks the model for a plain-language reading of report. Patient age
// and sex fall back to the values printed on the report.
func (s *ReportService) Analyze(ctx context.Context, report *domain.Report, age *int, sex *domain.Sex) (*domain.Analysis, error) {
	if report == nil {
		return nil, fmt.Errorf("report is required")
	}
	if age == nil {
		age = report.PatientAge
	}
	if sex == nil {
		sex = report.PatientSex
	}

	prompt, err := BuildAnalysisPrompt(report, age, sex)
	if err != nil {
		return nil, err
	}

	completion, err := s.llm.Complete(ctx, prompt, s.config.AnalysisMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze report: %w", err)
	}

	var analysis domain.Analysis
	if err := external.DecodeJSONObject(completion, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	normalizeAnalysis(&analysis)

	s.logger.WithFields(logrus.Fields{
		"report_id":       report.ID,
		"attention_items": len(analysis.AttentionItems),
		"correlations":    len(analysis.Correlations),
	}).Info("Report analyzed")

	return &analysis, nil
}

// normalizeAnalysis replaces nil lists with empty ones and downgrades
// unknown severities to moderate.
func normalizeAnalysis(a *domain.Analysis) {
	if a.Positives == nil {
		a.Positives = []string{}
	}
	if a.AttentionItems == nil {
		a.AttentionItems = []domain.AttentionItem{}
	}
	if a.Correlations == nil {
		a.Correlations = []domain.Correlation{}
	}
	for i := range a.AttentionItems {
		if !a.AttentionItems[i].Severity.IsValid() {
			a.AttentionItems[i].Severity = domain.MODERATE
		}
	}
}
