package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripMarkup reduces upstream free text to plain text. Review embeds and
// scraped snippets occasionally arrive with HTML fragments; plain strings
// pass through untouched.
func stripMarkup(text string) string {
	if !strings.Contains(text, "<") || !strings.Contains(text, ">") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	cleaned := strings.Join(strings.Fields(doc.Text()), " ")
	if cleaned == "" {
		return text
	}
	return cleaned
}
