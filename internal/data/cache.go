package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"thrust-planner/internal/model"
)

// CachedCalculation is one stored engine run.
type CachedCalculation struct {
	Ship       model.ShipConfiguration
	Result     *model.CalculationResult
	ComputedAt time.Time
}

type cacheEntry struct {
	calc      *CachedCalculation
	expiresAt time.Time
}

// ResultCache keeps computed results for a while so reports and exports can
// be fetched by ID after a calculation request. A nil cache is valid and
// never stores anything.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached calculation if available and not expired
func (c *ResultCache) Get(key string) (*CachedCalculation, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.calc, true
}

// Set stores a calculation in the cache
func (c *ResultCache) Set(key string, calc *CachedCalculation) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry{
		calc:      calc,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ResultCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}

// RunCleanup removes expired entries every interval until ctx is done.
func (c *ResultCache) RunCleanup(ctx context.Context, interval time.Duration) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *ResultCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// GenerateCacheKey derives a stable ID from the ship configuration. Identical
// configurations share an ID because the engine is deterministic.
func GenerateCacheKey(ship model.ShipConfiguration) string {
	// Map keys are sorted by encoding/json, so the encoding is stable.
	raw, err := json.Marshal(ship)
	if err != nil {
		raw = []byte(ship.Name)
	}
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:16])
}
