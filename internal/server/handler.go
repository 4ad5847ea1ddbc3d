package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"futbol24-scraper/internal/scrape"
	"futbol24-scraper/internal/stats"
)

type scrapeResponse struct {
	League  string        `json:"league"`
	Matches []stats.Match `json:"matches"`
}

// handleScrapeFixtures fetches the league page named by the leagueUrl query
// parameter, parses standings and fixtures out of it and responds with the
// derived per-fixture statistics.
func (s *Server) handleScrapeFixtures(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		scrapeDuration.Set(time.Since(start).Seconds())
		if rec := recover(); rec != nil {
			log.Printf("scrape-fixtures panic: %v", rec)
			scrapeSuccess.Set(0)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	leagueURL := strings.TrimSpace(r.URL.Query().Get("leagueUrl"))
	if leagueURL == "" {
		writeError(w, http.StatusBadRequest, "leagueUrl query parameter required")
		return
	}

	pageURL := s.resolveLeagueURL(leagueURL)
	html, err := s.fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		log.Printf("scrape-fixtures fetch error for %s: %v", pageURL, err)
		scrapeSuccess.Set(0)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("scrape-fixtures parse error for %s: %v", pageURL, err)
		scrapeSuccess.Set(0)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := stats.NewIndex(scrape.Standings(doc))
	matches := stats.Compose(scrape.Fixtures(doc), index)
	scrapeSuccess.Set(1)

	writeJSON(w, http.StatusOK, scrapeResponse{
		League:  scrape.LeagueName(doc),
		Matches: matches,
	})
}

// resolveLeagueURL treats values without a scheme prefix as site-relative
// paths under the configured base.
func (s *Server) resolveLeagueURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return strings.TrimRight(s.baseURL, "/") + "/" + strings.TrimLeft(raw, "/")
}
