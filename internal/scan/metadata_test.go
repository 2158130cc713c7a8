package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedroganco/sanum/internal/domain"
)

func TestExtractMetadata_HeroText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{"too short", `<h1>Welcome</h1>`, ""},
		{"accepted", `<h1>Fresh Bakery Downtown</h1>`, "Fresh Bakery Downtown"},
		{"first qualifying heading", `<h1>Welcome</h1><h1 class="hero">Fresh Bakery Downtown</h1>`, "Fresh Bakery Downtown"},
		{"nested markup", `<h1><span>Bread</span> baked <em>every</em> morning</h1>`, "Bread baked every morning"},
		{"surrounding whitespace", "<h1>\n   Fresh Bakery Downtown\n</h1>", "Fresh Bakery Downtown"},
		{"embedded newline", "<h1>Fresh Bakery<br>\nDowntown Lisbon</h1>", ""},
		{"too long", "<h1>" + strings.Repeat("bread ", 30) + "</h1>", ""},
		{"entities decoded", `<h1>Bread &amp; Coffee since 1987</h1>`, "Bread & Coffee since 1987"},
		{"no heading", `<div>Fresh Bakery Downtown</div>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetadata(tt.html).HeroText)
		})
	}
}

func TestExtractMetadata_Tagline(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			"h2 preferred",
			`<p>We bake sourdough every single morning in Lisbon.</p><h2>Sourdough since 1987</h2>`,
			"Sourdough since 1987",
		},
		{
			"short h2 falls back to paragraph",
			`<h2>Menu</h2><p>Hi</p><p>We bake sourdough every single morning in Lisbon.</p>`,
			"We bake sourdough every single morning in Lisbon.",
		},
		{
			"pre is not a paragraph",
			`<pre>We bake sourdough every single morning in Lisbon.</pre>`,
			"",
		},
		{"nothing qualifies", `<h2>Menu</h2><p>Open daily</p>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetadata(tt.html).Tagline)
		})
	}
}

func TestExtractMetadata_MetaTags(t *testing.T) {
	page := `<head>
<meta charset="utf-8">
<meta name="description" content="Bread &amp; coffee in Lisbon">
<meta content="Artisan bakery since 1987" property="og:description">
</head>`

	meta := ExtractMetadata(page)

	assert.Equal(t, "Bread &amp; coffee in Lisbon", meta.MetaDescription, "attribute values are kept literally")
	assert.Equal(t, "Artisan bakery since 1987", meta.OGDescription)

	empty := ExtractMetadata(`<html><body></body></html>`)
	assert.Empty(t, empty.MetaDescription)
	assert.Empty(t, empty.OGDescription)
	assert.NotNil(t, empty.DominantColors)
	assert.Equal(t, domain.NEUTRAL, empty.DetectedTone)
}

func TestExtractMetadata_ToneFromCopy(t *testing.T) {
	page := `<h1>The enterprise solution for your business</h1>
<meta name="description" content="Trusted by industry leaders">`

	assert.Equal(t, domain.PROFESSIONAL, ExtractMetadata(page).DetectedTone)
}

func TestExtractDominantColors(t *testing.T) {
	page := `<div style="color: #ff5733; background-color: rgb(51, 102, 255)">
<p style="color:#FF5733">a</p>
<span style="border-color: #fff">white</span>
<i style="background: #333333">grey</i>
<b style="fill: #0a0">green</b>
<u style="color: rgb(300, 0, 0)">out of range</u>
<svg fill="#123456"></svg>`

	assert.Equal(t, []string{"#FF5733", "#3366FF", "#00AA00"}, ExtractDominantColors(page))
}

func TestExtractDominantColors_TopFiveStable(t *testing.T) {
	page := `<style>
.a { color: #AA0000 } .b { color: #00AA00 } .c { color: #0000AA }
.d { color: #AAAA00 } .e { color: #00AAAA } .f { color: #AA00AA }
.g { background-color: #0000AA } .h { border-color: rgba(170, 0, 170, 0.5) }
</style>`

	assert.Equal(t, []string{"#0000AA", "#AA00AA", "#AA0000", "#00AA00", "#AAAA00"}, ExtractDominantColors(page))
}

func TestExtractDominantColors_None(t *testing.T) {
	colors := ExtractDominantColors(`<p style="color: #000; background: #fafafa">plain</p>`)
	assert.NotNil(t, colors)
	assert.Empty(t, colors)
}

func TestDetectTone(t *testing.T) {
	tests := []struct {
		text     string
		expected domain.Tone
	}{
		{"enterprise solution for your business", domain.PROFESSIONAL},
		{"", domain.NEUTRAL},
		{"We love making bread", domain.CASUAL},
		{"Amazing bread! Wow", domain.PLAYFUL},
		{"expert bakers who love bread", domain.CASUAL},
		{"business magic", domain.NEUTRAL},
		{"ENTERPRISE SOLUTION", domain.PROFESSIONAL},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectTone(tt.text))
		})
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "a b & c", StripTags("<b>a</b>\n\t<i>b</i> &amp; c"))
	assert.Equal(t, "x y", StripTags("x&nbsp;&nbsp;y"))
	assert.Equal(t, `"quoted" <tag>`, StripTags("&quot;quoted&quot; &lt;tag&gt;"))
	assert.Equal(t, "caf&eacute; &#8212; &#x27;", StripTags("caf&eacute; &#8212; &#x27;"))
	assert.Equal(t, "&lt;", StripTags("&amp;lt;"))
}
