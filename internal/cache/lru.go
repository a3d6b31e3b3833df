package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hearthforge/tavern-api/internal/entities"
)

// SchemaVersion is the current version of the cached aggregate shape.
// Increment when the aggregate structure changes so stale entries
// auto-invalidate instead of deserializing into the wrong shape.
const SchemaVersion = "1.0"

const (
	// DefaultSize is the default maximum number of cached sessions
	DefaultSize = 1024

	// DefaultTTL is the default time-to-live for cached snapshots
	DefaultTTL = 15 * time.Minute
)

// cachedEntry wraps an aggregate with version metadata for invalidation
type cachedEntry struct {
	Version   string
	Aggregate *entities.SessionAggregate
	CachedAt  time.Time
}

// LRU is an in-memory session cache with time-based expiration and
// version-based invalidation.
type LRU struct {
	lru *expirable.LRU[string, *cachedEntry]
}

// NewLRU creates a session cache holding at most size aggregates, each
// expiring after ttl. Zero values fall back to the defaults.
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRU{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

var _ SessionCache = (*LRU)(nil)

// Get retrieves a cached aggregate. Entries with a mismatched schema
// version are dropped and reported as a miss. The returned aggregate is a
// deep copy so callers can mutate it freely.
func (c *LRU) Get(sessionID string) (*entities.SessionAggregate, bool) {
	entry, found := c.lru.Get(sessionID)
	if !found {
		return nil, false
	}

	if entry.Version != SchemaVersion {
		c.lru.Remove(sessionID)
		return nil, false
	}

	return entry.Aggregate.Clone(), true
}

// Set stores a deep copy of the aggregate under the session id
func (c *LRU) Set(sessionID string, aggregate *entities.SessionAggregate) {
	if aggregate == nil {
		return
	}
	c.lru.Add(sessionID, &cachedEntry{
		Version:   SchemaVersion,
		Aggregate: aggregate.Clone(),
		CachedAt:  time.Now(),
	})
}

// Delete drops the cached snapshot for the session id
func (c *LRU) Delete(sessionID string) {
	c.lru.Remove(sessionID)
}

// Purge drops all cached snapshots
func (c *LRU) Purge() {
	c.lru.Purge()
}
