// Package stats joins fixtures to their teams' standings rows and derives
// the compact win/draw/loss and goal-ratio summary strings.
package stats

import (
	"fmt"
	"strings"

	"futbol24-scraper/internal/scrape"
)

// Match is the derived output for one fixture.
type Match struct {
	Home        string `json:"home"`
	Away        string `json:"away"`
	WDLOverall  string `json:"wdl_overall"`
	GoalRatio   string `json:"goal_ratio"`
	HomeAwayWDL string `json:"homeaway_wdl"`
}

// Index maps normalized team names to standings rows. When the source page
// lists a team twice, the later row wins.
type Index struct {
	rows map[string]scrape.StandingsRow
}

// NewIndex builds an index keyed by Normalize(team).
func NewIndex(rows []scrape.StandingsRow) *Index {
	m := make(map[string]scrape.StandingsRow, len(rows))
	for _, r := range rows {
		m[Normalize(r.Team)] = r
	}
	return &Index{rows: m}
}

// Normalize lowercases a team name and collapses internal whitespace to
// single spaces.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup finds the standings row for a team name. The collapsed-whitespace
// key is tried first, then plain lowercasing; both attempts are kept in this
// order even though they only differ for irregular spacing.
func (ix *Index) Lookup(name string) (scrape.StandingsRow, bool) {
	if r, ok := ix.rows[Normalize(name)]; ok {
		return r, true
	}
	r, ok := ix.rows[strings.ToLower(name)]
	return r, ok
}

// Compose derives one Match per fixture. A team with no standings row is
// treated as all zeros rather than an error.
func Compose(fixtures []scrape.Fixture, ix *Index) []Match {
	matches := make([]Match, 0, len(fixtures))
	for _, f := range fixtures {
		home, homeOK := ix.Lookup(f.Home)
		away, awayOK := ix.Lookup(f.Away)

		var homeSplit, awaySplit *scrape.Split
		if homeOK {
			homeSplit = home.HomeSplit
		}
		if awayOK {
			awaySplit = away.AwaySplit
		}

		matches = append(matches, Match{
			Home:        f.Home,
			Away:        f.Away,
			WDLOverall:  overallWDL(home, homeOK) + " - " + overallWDL(away, awayOK),
			GoalRatio:   goalRatio(home, homeOK) + " - " + goalRatio(away, awayOK),
			HomeAwayWDL: splitWDL(homeSplit) + " - " + splitWDL(awaySplit),
		})
	}
	return matches
}

func overallWDL(r scrape.StandingsRow, ok bool) string {
	if !ok {
		return "000"
	}
	return fmt.Sprintf("%d%d%d", r.Wins, r.Draws, r.Losses)
}

// goalRatio scales goals by ten. Goals-against defaults to 1 when the row or
// its stats are missing, so a defaulted denominator stays distinguishable
// from a real zero.
func goalRatio(r scrape.StandingsRow, ok bool) string {
	gf, ga := 0, 1
	if ok && r.HasStats {
		gf, ga = r.GoalsFor, r.GoalsAgainst
	}
	return fmt.Sprintf("%d/%d", gf*10, ga*10)
}

func splitWDL(s *scrape.Split) string {
	if s == nil {
		return "000"
	}
	return fmt.Sprintf("%d%d%d", s.Wins, s.Draws, s.Losses)
}
