package scan

import (
	"strings"

	"github.com/pedroganco/sanum/internal/domain"
)

var (
	professionalKeywords = []string{"solution", "enterprise", "business", "professional", "industry", "expert"}
	casualKeywords       = []string{"hey", "awesome", "cool", "fun", "easy", "simple", "love"}
	playfulKeywords      = []string{"amazing", "exciting", "magic", "wow", "yay", "!"}
)

// DetectTone classifies copy by how many keywords of each set it contains.
// Professional is checked before playful, and casual only needs one hit.
func DetectTone(text string) domain.Tone {
	lower := strings.ToLower(text)
	professional := countKeywords(lower, professionalKeywords)
	casual := countKeywords(lower, casualKeywords)
	playful := countKeywords(lower, playfulKeywords)

	switch {
	case professional > casual && professional > playful:
		return domain.PROFESSIONAL
	case playful > professional && playful > casual:
		return domain.PLAYFUL
	case casual > 0:
		return domain.CASUAL
	default:
		return domain.NEUTRAL
	}
}

// countKeywords counts the distinct keywords that occur anywhere in text.
func countKeywords(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
