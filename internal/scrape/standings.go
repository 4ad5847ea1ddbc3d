package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Known standings table class names, in priority order.
var standingsTableSelectors = []string{
	"table.standings",
	"table.stat",
	"table.table-main",
	"table.competition",
	"table",
}

var (
	// e.g. "9-2-3" inside a cell, a home or away win/draw/loss breakdown
	splitPattern = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{1,2}`)
	nonNumeric   = regexp.MustCompile(`[^0-9/-]`)
)

// Standings extracts per-team season rows from the first standings-looking
// table on the page. It never fails; rows with fewer than six cells are
// skipped and rows with fewer than seven numeric tokens keep zero stats.
func Standings(doc *goquery.Document) []StandingsRow {
	var table *goquery.Selection
	for _, sel := range standingsTableSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			table = s
			break
		}
	}
	if table == nil {
		return nil
	}

	var rows []StandingsRow
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			// header row
			return
		}
		row, ok := standingsRow(tr)
		if !ok {
			return
		}
		row.Position = len(rows) + 1
		rows = append(rows, row)
	})
	return rows
}

func standingsRow(tr *goquery.Selection) (StandingsRow, bool) {
	cells := tr.Find("td")
	if cells.Length() < 6 {
		return StandingsRow{}, false
	}

	name := strings.TrimSpace(tr.Find("a").Last().Text())
	if name == "" {
		name = strings.TrimSpace(cells.Eq(1).Text())
	}
	row := StandingsRow{Team: name}

	var tokens []string
	var splits []string
	cells.Each(func(_ int, td *goquery.Selection) {
		text := strings.TrimSpace(td.Text())
		cleaned := nonNumeric.ReplaceAllString(text, "")
		if strings.ContainsAny(cleaned, "0123456789") {
			tokens = append(tokens, cleaned)
		}
		splits = append(splits, splitPattern.FindAllString(text, -1)...)
	})

	// Column order is assumed, not verified: with enough numeric cells the
	// tokens are taken positionally, otherwise the stats stay zero.
	if len(tokens) >= 7 {
		row.Played = leadingInt(tokens[0])
		row.Wins = leadingInt(tokens[1])
		row.Draws = leadingInt(tokens[2])
		row.Losses = leadingInt(tokens[3])
		row.GoalsFor = leadingInt(tokens[4])
		row.GoalsAgainst = leadingInt(tokens[5])
		row.Points = leadingInt(tokens[6])
		row.HasStats = true
	}

	if len(splits) >= 1 {
		row.HomeSplit = parseSplit(splits[0])
	}
	if len(splits) >= 2 {
		row.AwaySplit = parseSplit(splits[1])
	}
	return row, true
}

func parseSplit(s string) *Split {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return nil
	}
	return &Split{
		Wins:   leadingInt(parts[0]),
		Draws:  leadingInt(parts[1]),
		Losses: leadingInt(parts[2]),
	}
}

// leadingInt parses the leading integer of s, so a token like "9-2-3" yields
// 9 and a token with no leading digits yields 0.
func leadingInt(s string) int {
	neg := false
	i := 0
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	n := 0
	start := i
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if i == start {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
