package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Match listing containers, in priority order.
var fixtureSelectors = []string{
	"tr.match",
	"tr.fixture",
	"div.fixture",
	"li.match",
	"table.fixtures tr",
}

var (
	homeSelectors = []string{"td.home a", ".team-home", ".home"}
	awaySelectors = []string{"td.away a", ".team-away", ".away"}
)

// Fixtures extracts upcoming home/away pairings from the page. The first
// container selector that yields at least one fixture wins; if none do, every
// hyperlink whose text looks like "A - B" is treated as a fixture. The
// fallback is intentionally permissive and may pick up unrelated links.
func Fixtures(doc *goquery.Document) []Fixture {
	for _, sel := range fixtureSelectors {
		nodes := doc.Find(sel)
		if nodes.Length() == 0 {
			continue
		}
		var fixtures []Fixture
		nodes.Each(func(_ int, n *goquery.Selection) {
			home := firstText(n, homeSelectors)
			if home == "" {
				home = strings.TrimSpace(n.Find("td").Eq(1).Text())
			}
			away := firstText(n, awaySelectors)
			if away == "" {
				away = strings.TrimSpace(n.Find("td").Eq(2).Text())
			}
			if home != "" && away != "" {
				fixtures = append(fixtures, Fixture{Home: home, Away: away})
			}
		})
		if len(fixtures) > 0 {
			return fixtures
		}
	}
	return linkFixtures(doc)
}

func firstText(n *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(n.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func linkFixtures(doc *goquery.Document) []Fixture {
	var fixtures []Fixture
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		i := strings.Index(text, " - ")
		if i < 0 {
			return
		}
		home := strings.TrimSpace(text[:i])
		away := strings.TrimSpace(text[i+3:])
		if home != "" && away != "" {
			fixtures = append(fixtures, Fixture{Home: home, Away: away})
		}
	})
	return fixtures
}
