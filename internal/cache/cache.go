// Package cache provides the session snapshot cache used by the game
// session store. The cache is a side-channel optimization only: the durable
// store stays authoritative, and a miss or divergence self-heals on the next
// read-through load.
package cache

import (
	"github.com/hearthforge/tavern-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_cache.go -package=cachemock github.com/hearthforge/tavern-api/internal/cache SessionCache

// SessionCache caches session aggregates by session id
type SessionCache interface {
	// Get returns the cached aggregate if present
	Get(sessionID string) (*entities.SessionAggregate, bool)

	// Set stores the aggregate snapshot for the session id
	Set(sessionID string, aggregate *entities.SessionAggregate)

	// Delete drops the cached snapshot for the session id
	Delete(sessionID string)

	// Purge drops every cached snapshot
	Purge()
}
