package external

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

// Extraction method names reported alongside the text.
const (
	MethodPdftotext = "pdftotext"
	MethodNative    = "native"
)

// Extractor modes accepted by NewTextExtractor.
const (
	ExtractorAuto      = "auto"
	ExtractorPdftotext = "pdftotext"
	ExtractorNative    = "native"
)

// NewTextExtractor builds the extractor selected by mode. "auto" tries
// pdftotext first and falls back to the native parser.
func NewTextExtractor(logger *logrus.Logger, mode, pdftotextPath string) (domain.TextExtractor, error) {
	switch mode {
	case ExtractorPdftotext:
		return NewPdftotextExtractor(pdftotextPath), nil
	case ExtractorNative:
		return NewNativeExtractor(), nil
	case ExtractorAuto, "":
		return NewFallbackExtractor(logger, NewPdftotextExtractor(pdftotextPath), NewNativeExtractor()), nil
	default:
		return nil, fmt.Errorf("unknown PDF extractor %q", mode)
	}
}

// PdftotextExtractor runs poppler's pdftotext in layout mode.
type PdftotextExtractor struct {
	path string
}

// NewPdftotextExtractor creates an extractor that runs the binary at path,
// or "pdftotext" from PATH when path is empty.
func NewPdftotextExtractor(path string) *PdftotextExtractor {
	if path == "" {
		path = "pdftotext"
	}
	return &PdftotextExtractor{path: path}
}

// ExtractText implements domain.TextExtractor.
func (e *PdftotextExtractor) ExtractText(ctx context.Context, document io.Reader) (string, string, error) {
	tmp, err := os.CreateTemp("", "sanum-*.pdf")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, document); err != nil {
		tmp.Close()
		return "", "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", "", fmt.Errorf("failed to write temp file: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, "-layout", tmp.Name(), "-")
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("pdftotext failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return string(out), MethodPdftotext, nil
}

// NativeExtractor reads text with a pure Go PDF parser. It needs no
// external binaries but loses column layout.
type NativeExtractor struct{}

// NewNativeExtractor creates a NativeExtractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// ExtractText implements domain.TextExtractor.
func (e *NativeExtractor) ExtractText(ctx context.Context, document io.Reader) (text string, method string, err error) {
	data, err := io.ReadAll(document)
	if err != nil {
		return "", "", fmt.Errorf("failed to read document: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text, method, err = "", "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", "", fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", "", fmt.Errorf("failed to extract text: %w", err)
	}
	return buf.String(), MethodNative, nil
}

// FallbackExtractor tries each extractor in turn and returns the first
// non-blank result.
type FallbackExtractor struct {
	extractors []domain.TextExtractor
	logger     *logrus.Logger
}

// NewFallbackExtractor chains extractors in priority order.
func NewFallbackExtractor(logger *logrus.Logger, extractors ...domain.TextExtractor) *FallbackExtractor {
	return &FallbackExtractor{extractors: extractors, logger: logger}
}

// ExtractText implements domain.TextExtractor.
func (e *FallbackExtractor) ExtractText(ctx context.Context, document io.Reader) (string, string, error) {
	data, err := io.ReadAll(document)
	if err != nil {
		return "", "", fmt.Errorf("failed to read document: %w", err)
	}

	var errs []error
	for _, extractor := range e.extractors {
		text, method, err := extractor.ExtractText(ctx, bytes.NewReader(data))
		if err != nil {
			e.logger.WithError(err).WithField("extractor", fmt.Sprintf("%T", extractor)).Debug("PDF extractor failed, trying next")
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, method, nil
	}

	if len(errs) == len(e.extractors) && len(errs) > 0 {
		return "", "", errors.Join(errs...)
	}
	// Every extractor ran but found nothing, which is what scanned documents look like.
	return "", "", nil
}
