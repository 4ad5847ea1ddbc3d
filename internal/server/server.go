// Package server exposes the scraping pipeline over a single HTTP route.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"futbol24-scraper/internal/fetch"
)

// Server routes and handles scrape requests.
type Server struct {
	router  *mux.Router
	fetcher *fetch.Fetcher
	baseURL string
}

// New wires the routes for the given fetcher. baseURL is prepended to
// site-relative league paths.
func New(fetcher *fetch.Fetcher, baseURL string) *Server {
	s := &Server{
		fetcher: fetcher,
		baseURL: baseURL,
	}
	r := mux.NewRouter()
	r.HandleFunc("/scrape-fixtures", s.handleScrapeFixtures).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	requestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
