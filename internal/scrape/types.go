// Package scrape extracts standings and upcoming fixtures from a league
// page's HTML. Parsing is best-effort: rows that do not look well-formed are
// skipped and missing fields default rather than raising errors, since the
// target site's markup is assumed, not verified.
package scrape

// Split is a win/draw/loss record restricted to home or away matches.
type Split struct {
	Wins   int
	Draws  int
	Losses int
}

// StandingsRow is one team's season-to-date line from the standings table.
type StandingsRow struct {
	Team         string
	Position     int
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	// HasStats is false when the row yielded fewer than seven numeric
	// tokens and the fields above were left at zero.
	HasStats  bool
	HomeSplit *Split
	AwaySplit *Split
}

// Fixture is a scheduled match identified only by its two team names.
type Fixture struct {
	Home string
	Away string
}
