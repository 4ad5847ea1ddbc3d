package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"futbol24-scraper/internal/scrape"
)

func TestComposeDerivedStrings(t *testing.T) {
	index := NewIndex([]scrape.StandingsRow{
		{
			Team: "Arsenal", Wins: 6, Draws: 2, Losses: 1,
			GoalsFor: 18, GoalsAgainst: 8, HasStats: true,
			HomeSplit: &scrape.Split{Wins: 9, Draws: 2, Losses: 0},
		},
		{
			Team: "Man United", Wins: 1, Draws: 2, Losses: 5,
			GoalsFor: 7, GoalsAgainst: 15, HasStats: true,
			AwaySplit: &scrape.Split{Wins: 0, Draws: 2, Losses: 9},
		},
	})

	got := Compose([]scrape.Fixture{{Home: "Arsenal", Away: "Man United"}}, index)
	want := []Match{{
		Home:        "Arsenal",
		Away:        "Man United",
		WDLOverall:  "621 - 125",
		GoalRatio:   "180/80 - 70/150",
		HomeAwayWDL: "920 - 029",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("composed match mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeTeamsAbsentFromStandings(t *testing.T) {
	index := NewIndex(nil)

	got := Compose([]scrape.Fixture{{Home: "Nowhere FC", Away: "Ghost Town"}}, index)
	want := []Match{{
		Home:        "Nowhere FC",
		Away:        "Ghost Town",
		WDLOverall:  "000 - 000",
		GoalRatio:   "0/10 - 0/10",
		HomeAwayWDL: "000 - 000",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("composed match mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeDefaultedStatsKeepSafeDenominator(t *testing.T) {
	// A row that parsed but yielded too few numeric tokens: stats defaulted,
	// so goals-against falls back to 1 rather than a real 0.
	index := NewIndex([]scrape.StandingsRow{
		{Team: "Luton", HasStats: false},
	})

	got := Compose([]scrape.Fixture{{Home: "Luton", Away: "Luton"}}, index)
	if got[0].GoalRatio != "0/10 - 0/10" {
		t.Errorf("goal_ratio = %q, want 0/10 - 0/10", got[0].GoalRatio)
	}
}

func TestComposeMultiDigitWDLComponents(t *testing.T) {
	index := NewIndex([]scrape.StandingsRow{
		{Team: "Invincibles", Wins: 12, Draws: 0, Losses: 0, GoalsFor: 30, GoalsAgainst: 4, HasStats: true},
	})

	got := Compose([]scrape.Fixture{{Home: "Invincibles", Away: "Invincibles"}}, index)
	if got[0].WDLOverall != "1200 - 1200" {
		t.Errorf("wdl_overall = %q, want 1200 - 1200", got[0].WDLOverall)
	}
}

func TestLookupIsCaseAndWhitespaceInsensitive(t *testing.T) {
	index := NewIndex([]scrape.StandingsRow{
		{Team: "Real   Madrid", Wins: 5, HasStats: true},
	})

	row, ok := index.Lookup("real madrid")
	if !ok {
		t.Fatal("expected lookup to find the irregularly spaced row")
	}
	if row.Wins != 5 {
		t.Errorf("found wrong row: %+v", row)
	}
}

func TestIndexLaterDuplicateWins(t *testing.T) {
	index := NewIndex([]scrape.StandingsRow{
		{Team: "Arsenal", Wins: 1},
		{Team: "arsenal", Wins: 9},
	})

	row, ok := index.Lookup("Arsenal")
	if !ok {
		t.Fatal("expected lookup hit")
	}
	if row.Wins != 9 {
		t.Errorf("expected the later duplicate row, got %+v", row)
	}
}

func TestComposeEmptyFixturesYieldsEmptySlice(t *testing.T) {
	got := Compose(nil, NewIndex(nil))
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Real   Madrid", "real madrid"},
		{"  Arsenal ", "arsenal"},
		{"MAN\tUNITED", "man united"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
