package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedProfileEntry wraps a user aggregate with version metadata
type cachedProfileEntry struct {
	Version  string                `json:"version"`
	User     *domain.UserAggregate `json:"user"`
	CachedAt time.Time             `json:"cached_at"`
}

// profileCache provides an in-memory LRU cache for profile lookups with
// time-based expiration. The TTL is short because aggregates change with
// every scored activity.
type profileCache struct {
	lru *expirable.LRU[string, *cachedProfileEntry]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// Get retrieves a profile from the cache.
// Returns (nil, false) if not cached, expired, or the schema version changed.
func (c *profileCache) Get(userID string) (*domain.UserAggregate, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}

	return entry.User, true
}

// Set stores a profile in the cache with the current schema version.
func (c *profileCache) Set(userID string, user *domain.UserAggregate) {
	c.lru.Add(userID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a profile from the cache.
func (c *profileCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
