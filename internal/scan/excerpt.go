package scan

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
)

// DefaultExcerptLength bounds the readable text passed to the analysis prompt.
const DefaultExcerptLength = 2000

// ExtractExcerpt returns the main readable text of a page, trimmed to at
// most maxRunes characters. A non-positive maxRunes selects
// DefaultExcerptLength.
func ExtractExcerpt(page string, pageURL *url.URL, maxRunes int) (string, error) {
	if maxRunes <= 0 {
		maxRunes = DefaultExcerptLength
	}

	article, err := readability.FromReader(strings.NewReader(page), pageURL)
	if err != nil {
		return "", fmt.Errorf("parse readable content: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	return truncateRunes(text, maxRunes), nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n]))
}
