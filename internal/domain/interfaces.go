package domain

import (
	"context"
	"io"
	"time"
)

// TextExtractor turns a PDF document into plain text. It returns the name of
// the method that produced the text.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdf io.Reader) (text string, method string, err error)
}

// LLMClient sends a single prompt to a language model and returns the text
// of its completion.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// HTMLFetcher downloads the HTML of a web page.
type HTMLFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ScanCache stores discovery results keyed by normalized URL.
type ScanCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ScanHistory records completed discoveries.
type ScanHistory interface {
	Record(ctx context.Context, record *ScanRecord) error
	List(ctx context.Context, limit, offset int) ([]*ScanRecord, error)
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
	Close() error
}
