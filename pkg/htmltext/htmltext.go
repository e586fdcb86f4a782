// Package htmltext flattens CMS-rendered HTML fragments into plain text
// suitable for list rows and feed summaries.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Flatten strips markup from an HTML fragment and collapses whitespace.
// Invalid markup degrades to whatever text the parser can recover; the
// original string is returned only when parsing fails outright.
func Flatten(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Summary flattens a fragment and truncates it to at most max runes,
// appending an ellipsis when text was cut.
func Summary(fragment string, max int) string {
	text := Flatten(fragment)
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
