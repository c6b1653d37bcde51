package cache

import (
	"context"
	"steel-auction-service/internal/domain"
	"sync"
	"time"
)

type memoryEntry struct {
	p       domain.Point
	expires time.Time
}

// In-process cache in front of the stored address book when Redis is not
// configured. Entries expire after TTL so address book edits show up without
// a restart; a zero TTL keeps entries forever.
type MemoryGeocodeCache struct {
	mu  sync.RWMutex
	m   map[string]memoryEntry
	ttl time.Duration
	now func() time.Time
}

func NewMemoryGeocodeCache(ttl time.Duration) *MemoryGeocodeCache {
	return &MemoryGeocodeCache{m: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (c *MemoryGeocodeCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.Point, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	out := make(map[string]domain.Point, len(addresses))
	for _, a := range uniqueKeys(addresses) {
		e, ok := c.m[a]
		if !ok || (c.ttl > 0 && !now.Before(e.expires)) {
			continue
		}
		out[a] = e.p
	}
	return out, nil
}

func (c *MemoryGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	for addr, p := range results {
		c.m[addr] = memoryEntry{p: p, expires: expires}
	}
	return nil
}
