package player

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HeroArena_Go/internal/domain"
)

// CacheSchemaVersion is bumped whenever domain.UserProfile changes shape
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the profile read cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports profile cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedProfile struct {
	Version  string
	Profile  domain.UserProfile
	CachedAt time.Time
}

// profileCache holds committed profiles for GetProfile.
// Entries are replaced after every committed write to the account.
type profileCache struct {
	lru    *expirable.LRU[string, *cachedProfile]
	hits   atomic.Int64
	misses atomic.Int64
}

func newProfileCache(config CacheConfig) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfile](config.Size, nil, config.TTL),
	}
}

// Get returns a copy of the cached profile
func (c *profileCache) Get(accountID string) (*domain.UserProfile, bool) {
	entry, found := c.lru.Get(accountID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(accountID)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	p := entry.Profile
	return &p, true
}

// Set stores a copy of p
func (c *profileCache) Set(p *domain.UserProfile) {
	c.lru.Add(p.AccountID, &cachedProfile{
		Version:  CacheSchemaVersion,
		Profile:  *p,
		CachedAt: time.Now(),
	})
}

// Invalidate drops the account's entry
func (c *profileCache) Invalidate(accountID string) {
	c.lru.Remove(accountID)
}

// GetStats returns hit/miss counters and the current size
func (c *profileCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
