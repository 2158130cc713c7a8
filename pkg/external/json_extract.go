package external

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

// ExtractJSONObject returns the substring of text running from the first
// "{" to the last "}". Models often wrap the requested JSON in prose or code
// fences; everything outside that span is discarded.
func ExtractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", domain.ErrNoJSON
	}
	return text[start : end+1], nil
}

// DecodeJSONObject extracts the JSON object embedded in text and decodes it
// into v.
func DecodeJSONObject(text string, v interface{}) error {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	return nil
}
