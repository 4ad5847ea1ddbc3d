package fetch

import (
	"sync"
	"time"
)

// Clock returns the current time; injectable for deterministic tests.
type Clock func() time.Time

type cacheEntry struct {
	html      string
	fetchedAt time.Time
}

// Cache is a TTL cache of raw page HTML keyed by the exact URL string.
// Stale entries are not removed, only overwritten by the next successful
// fetch of the same URL, so the map grows with the number of distinct URLs.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]cacheEntry
}

// NewCache creates a cache with the given TTL. A nil clock uses time.Now.
func NewCache(ttl time.Duration, now Clock) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached HTML for url if the entry is still within the TTL
// window.
func (c *Cache) Get(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[url]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return "", false
	}
	return e.html, true
}

// Set stores html for url, overwriting any prior entry.
func (c *Cache) Set(url, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{html: html, fetchedAt: c.now()}
}
