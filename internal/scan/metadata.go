package scan

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pedroganco/sanum/internal/domain"
)

var (
	h1Pattern  = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	h2Pattern  = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
	pPattern   = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>(.*?)</p>`)
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	wsPattern  = regexp.MustCompile(`\s+`)

	metaDescriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*content=(?:"([^"]*)"|'([^']*)')`),
		regexp.MustCompile(`(?i)<meta[^>]*content=(?:"([^"]*)"|'([^']*)')[^>]*name=["']description["']`),
	}
	ogDescriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]*property=["']og:description["'][^>]*content=(?:"([^"]*)"|'([^']*)')`),
		regexp.MustCompile(`(?i)<meta[^>]*content=(?:"([^"]*)"|'([^']*)')[^>]*property=["']og:description["']`),
	}
)

// Length windows are exclusive on both ends and counted in characters.
const (
	heroMinLen   = 10
	heroMaxLen   = 150
	h2TaglineMin = 15
	h2TaglineMax = 200
	pTaglineMin  = 30
	pTaglineMax  = 300
)

// ExtractMetadata pulls the headline copy, meta descriptions, brand colours
// and an approximate tone out of a page. It never fails: markup it cannot
// match simply yields empty fields.
func ExtractMetadata(page string) domain.WebsiteMetadata {
	hero := extractHero(page)
	tagline := extractTagline(page)
	metaDescription := firstAttribute(page, metaDescriptionPatterns)

	return domain.WebsiteMetadata{
		HeroText:        hero,
		Tagline:         tagline,
		MetaDescription: metaDescription,
		OGDescription:   firstAttribute(page, ogDescriptionPatterns),
		DominantColors:  ExtractDominantColors(page),
		DetectedTone:    DetectTone(hero + " " + tagline + " " + metaDescription),
	}
}

func extractHero(page string) string {
	for _, m := range h1Pattern.FindAllStringSubmatch(page, -1) {
		raw := strings.TrimSpace(tagPattern.ReplaceAllString(m[1], " "))
		if strings.ContainsAny(raw, "\r\n") {
			continue
		}
		text := StripTags(m[1])
		if withinLength(text, heroMinLen, heroMaxLen) {
			return text
		}
	}
	return ""
}

func extractTagline(page string) string {
	if text := firstWithin(page, h2Pattern, h2TaglineMin, h2TaglineMax); text != "" {
		return text
	}
	return firstWithin(page, pPattern, pTaglineMin, pTaglineMax)
}

func firstWithin(page string, re *regexp.Regexp, lo, hi int) string {
	for _, m := range re.FindAllStringSubmatch(page, -1) {
		text := StripTags(m[1])
		if withinLength(text, lo, hi) {
			return text
		}
	}
	return ""
}

func withinLength(text string, lo, hi int) bool {
	n := utf8.RuneCountInString(text)
	return n > lo && n < hi
}

// firstAttribute returns the literal content attribute captured by the
// first pattern that matches, or "".
func firstAttribute(page string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(page); m != nil {
			if m[1] != "" {
				return m[1]
			}
			return m[2]
		}
	}
	return ""
}

// entities are the only character references StripTags decodes. Numeric and
// other named references are left as written.
var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// StripTags removes markup from a fragment, decodes the basic entities and
// collapses whitespace.
func StripTags(fragment string) string {
	text := entities.Replace(tagPattern.ReplaceAllString(fragment, " "))
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.TrimSpace(wsPattern.ReplaceAllString(text, " "))
}
