package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// cleanTitle reduces a captured category title to its text: tags are
// dropped, entities decoded and surrounding whitespace trimmed.
func cleanTitle(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(buf.String())
		case html.TextToken:
			buf.Write(z.Text())
		}
	}
}
