package server

import "github.com/prometheus/client_golang/prometheus"

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_requests_total",
			Help: "Scrape requests handled, by response status code",
		},
		[]string{"status"},
	)
	scrapeSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scraper_last_scrape_success",
			Help: "Whether the last scrape succeeded (1=success, 0=failure)",
		},
	)
	scrapeDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scraper_last_scrape_duration_seconds",
			Help: "Time taken for the last scrape request in seconds",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, scrapeSuccess, scrapeDuration)
}
