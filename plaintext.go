package clipling

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ignoredTags contains HTML tags whose content is not user-visible text.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
	"head":     true,
}

var tagPattern = regexp.MustCompile(`<[a-zA-Z!/][^>]*>`)

// PlainText reduces a clipboard payload to translatable plain text.
//
// Text copied from browsers and rich editors often arrives as an HTML
// fragment. PlainText extracts the visible text from such fragments,
// skipping script/style/code content and collapsing whitespace runs.
// Input without markup is returned unchanged.
func PlainText(content string) string {
	if !tagPattern.MatchString(content) {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && ignoredTags[strings.ToLower(n.Data)] {
			return
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if text == "" {
		return content
	}
	return text
}
