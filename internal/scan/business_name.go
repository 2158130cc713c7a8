package scan

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// FallbackBusinessName is used when neither the page nor the URL yields a name.
const FallbackBusinessName = "Business"

var titleSuffixPattern = regexp.MustCompile(`(?i)\s*[-–|]\s*(?:Home|Homepage|Official|Website).*$`)

// ExtractBusinessName derives a display name for the site. It prefers the
// document title with boilerplate suffixes such as "| Home" removed, then
// og:site_name, then the first label of the host name.
func ExtractBusinessName(page, pageURL string) string {
	title, siteName := documentNames(page)

	if title != "" {
		if name := strings.TrimSpace(titleSuffixPattern.ReplaceAllString(title, "")); name != "" {
			return name
		}
	}
	if siteName != "" {
		return siteName
	}
	return nameFromHost(pageURL)
}

// documentNames walks the parsed document for the first <title> text and
// the og:site_name meta property.
func documentNames(page string) (title, siteName string) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", ""
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var property, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "property":
						property = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if property == "og:site_name" && siteName == "" {
					siteName = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, siteName
}

func nameFromHost(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return FallbackBusinessName
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return FallbackBusinessName
	}
	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:]
}
