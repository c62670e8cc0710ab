package catalog

import (
	"sort"
	"sync"
)

// CityCache maps state codes to their sorted city lists.
//
// Entries are never replaced once stored. The zero value is not usable;
// create caches with NewCityCache.
type CityCache struct {
	mu      sync.RWMutex
	entries map[string][]City
}

// NewCityCache creates an empty cache.
func NewCityCache() *CityCache {
	return &CityCache{entries: make(map[string][]City)}
}

// Get returns the cached cities for code. The returned slice is shared and
// must not be modified.
func (c *CityCache) Get(code string) ([]City, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cities, ok := c.entries[code]
	return cities, ok
}

// Has reports whether code has an entry.
func (c *CityCache) Has(code string) bool {
	_, ok := c.Get(code)
	return ok
}

// Store saves cities under code unless an entry already exists. It returns
// the entry that is in the cache after the call, which is the existing one
// when code was already present.
func (c *CityCache) Store(code string, cities []City) []City {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[code]; ok {
		return existing
	}
	c.entries[code] = cities
	return cities
}

// Len returns the number of cached states.
func (c *CityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Codes returns the cached state codes in lexical order.
func (c *CityCache) Codes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codes := make([]string, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
