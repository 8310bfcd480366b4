package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Text returns the visible text of a page with script, style and head
// content removed and runs of whitespace collapsed. This is the form the
// extraction oracle receives.
func Text(markup []byte) string {
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}

// Truncate caps s at max bytes, backing off to a rune boundary so a
// multi-byte character is never split.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
