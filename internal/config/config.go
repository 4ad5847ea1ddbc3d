package config

import (
	"os"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Addr is the listen address for the HTTP server, built from PORT.
	Addr string
	// BaseURL is prepended to site-relative league paths.
	BaseURL string
	// CacheTTL is how long a fetched page is served from cache.
	CacheTTL time.Duration
	// UserAgent identifies outbound requests to the scraped site.
	UserAgent string
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Addr:      ":" + getEnv("PORT", "3000"),
		BaseURL:   getEnv("FUTBOL24_BASE_URL", "https://www.futbol24.com/"),
		CacheTTL:  getDuration("CACHE_TTL", 30*time.Second),
		UserAgent: getEnv("SCRAPER_USER_AGENT", defaultUserAgent),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
