package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var leagueNameSelectors = []string{
	"h1",
	".league-header h2",
	"ol.breadcrumb li.active",
	".breadcrumb .active",
}

// LeagueName returns the first non-empty text among the known league heading
// elements, falling back to the page title.
func LeagueName(doc *goquery.Document) string {
	for _, sel := range leagueNameSelectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
