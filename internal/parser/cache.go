package parser

import (
	"crypto/md5"
	"encoding/hex"
	"sync"

	"expenso/internal/domain"
)

// Cache memoizes remote-fallback results so identical text is never billed
// twice. Keys are the digest of the exact input text with no normalization,
// so whitespace/case variants are distinct entries. Entries
// live for the session lifetime: no TTL, no eviction, no negative caching.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.ExpenseRecord
}

// NewCache creates an empty parse cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]domain.ExpenseRecord)}
}

// Get returns the cached record for text, if any.
func (c *Cache) Get(text string) (*domain.ExpenseRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.entries[cacheKey(text)]
	if !ok {
		return nil, false
	}
	return &rec, true
}

// Put stores a successful remote result for text.
func (c *Cache) Put(text string, rec domain.ExpenseRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(text)] = rec
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cacheKey(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
