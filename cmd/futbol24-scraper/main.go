package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"futbol24-scraper/internal/config"
	"futbol24-scraper/internal/fetch"
	"futbol24-scraper/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	fetcher := fetch.New(cfg.UserAgent, fetch.NewCache(cfg.CacheTTL, nil))
	srv := server.New(fetcher, cfg.BaseURL)

	fmt.Printf("Server running on http://localhost%s\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv))
}
