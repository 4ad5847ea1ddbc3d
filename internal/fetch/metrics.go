package fetch

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_page_cache_hits_total",
			Help: "Number of page fetches served from the in-memory cache",
		},
	)
	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_page_cache_misses_total",
			Help: "Number of page fetches that went to the network",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses)
}
