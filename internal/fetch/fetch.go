// Package fetch retrieves raw league page HTML, serving cached copies when
// fresh and rate-limiting network requests with a randomized courtesy delay.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

const (
	courtesyDelayMin = 250 * time.Millisecond
	courtesyDelayMax = 500 * time.Millisecond
)

// Error reports a failed page fetch.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher retrieves page HTML over HTTP, consulting its cache first.
type Fetcher struct {
	Client    *http.Client
	Cache     *Cache
	UserAgent string
	// Sleep performs the courtesy pause before a network fetch;
	// replaced in tests.
	Sleep func(time.Duration)
}

// New creates a Fetcher backed by the given cache.
func New(userAgent string, cache *Cache) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 15 * time.Second},
		Cache:     cache,
		UserAgent: userAgent,
		Sleep:     time.Sleep,
	}
}

// Fetch returns the HTML for url. A cache entry younger than the TTL is
// returned without any network call; otherwise Fetch waits the courtesy
// delay, issues the request and caches the body on success.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.Cache.Get(url); ok {
		cacheHits.Inc()
		return html, nil
	}
	cacheMisses.Inc()

	f.Sleep(courtesyDelay())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	// Browser-like headers; some league pages 404 without them
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}

	html := string(body)
	f.Cache.Set(url, html)
	return html, nil
}

func courtesyDelay() time.Duration {
	return courtesyDelayMin + time.Duration(rand.Int63n(int64(courtesyDelayMax-courtesyDelayMin)))
}
