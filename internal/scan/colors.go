package scan

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	colorDeclPattern = regexp.MustCompile(`(?i)\b(?:background-color|border-color|background|color|fill)\s*:\s*([^;}"'<>]+)`)
	hexPattern       = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbPattern       = regexp.MustCompile(`(?i)rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})`)
)

const (
	maxDominantColors = 5
	grayscaleDelta    = 10
	nearWhiteFloor    = 240
)

type rgb struct{ r, g, b int }

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// neutral reports whether c is close to grey or close to white.
func (c rgb) neutral() bool {
	hi := max(c.r, c.g, c.b)
	lo := min(c.r, c.g, c.b)
	if hi-lo < grayscaleDelta {
		return true
	}
	return c.r > nearWhiteFloor && c.g > nearWhiteFloor && c.b > nearWhiteFloor
}

// ExtractDominantColors returns up to five brand colours from inline CSS
// colour declarations as uppercase #RRGGBB, most frequent first. Equal
// counts keep the order in which the colours first appeared.
func ExtractDominantColors(page string) []string {
	counts := make(map[string]int)
	var order []string

	for _, decl := range colorDeclPattern.FindAllStringSubmatch(page, -1) {
		for _, c := range parseColors(decl[1]) {
			if c.neutral() {
				continue
			}
			h := c.hex()
			if counts[h] == 0 {
				order = append(order, h)
			}
			counts[h]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxDominantColors {
		order = order[:maxDominantColors]
	}
	if order == nil {
		return []string{}
	}
	return order
}

// parseColors reads hex and rgb()/rgba() colours from a declaration value
// in the order they appear.
func parseColors(value string) []rgb {
	type hit struct {
		pos int
		c   rgb
	}
	var hits []hit

	for _, loc := range hexPattern.FindAllStringSubmatchIndex(value, -1) {
		if c, ok := parseHex(value[loc[2]:loc[3]]); ok {
			hits = append(hits, hit{loc[0], c})
		}
	}
	for _, loc := range rgbPattern.FindAllStringSubmatchIndex(value, -1) {
		if c, ok := parseRGB(value[loc[2]:loc[3]], value[loc[4]:loc[5]], value[loc[6]:loc[7]]); ok {
			hits = append(hits, hit{loc[0], c})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]rgb, len(hits))
	for i, h := range hits {
		out[i] = h.c
	}
	return out
}

func parseHex(digits string) (rgb, bool) {
	if len(digits) == 3 {
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(n >> 16 & 0xFF), int(n >> 8 & 0xFF), int(n & 0xFF)}, true
}

func parseRGB(rs, gs, bs string) (rgb, bool) {
	var ch [3]int
	for i, s := range []string{rs, gs, bs} {
		v, err := strconv.Atoi(s)
		if err != nil || v > 255 {
			return rgb{}, false
		}
		ch[i] = v
	}
	return rgb{ch[0], ch[1], ch[2]}, true
}
