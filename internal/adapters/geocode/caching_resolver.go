package geocode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
	"steel-auction-service/internal/ports"

	"golang.org/x/sync/singleflight"
)

// CachingResolver puts a GeocodeCache in front of another resolver.
//
// It coordinates:
//   - Address normalization
//   - Cache lookups before delegating
//   - Collapsing concurrent lookups of the same address
//
// Cache failures are logged and the lookup falls through to the wrapped
// resolver. Misses (unknown addresses) are never cached.
// The resolver is safe for concurrent use.
type CachingResolver struct {
	next  ports.LocationResolver
	cache ports.GeocodeCache
	group singleflight.Group
}

func NewCachingResolver(next ports.LocationResolver, cache ports.GeocodeCache) (*CachingResolver, error) {
	if next == nil {
		return nil, errors.New("caching resolver: next resolver is nil")
	}
	if cache == nil {
		return nil, errors.New("caching resolver: cache is nil")
	}
	return &CachingResolver{next: next, cache: cache}, nil
}

func (c *CachingResolver) Resolve(ctx context.Context, address string) (_ domain.Point, err error) {
	defer obs.Time(ctx, "geocode.Resolve")(&err)

	key := NormalizeAddress(address)
	if key == "" {
		return domain.Point{}, fmt.Errorf("caching resolver: %w: empty address", domain.ErrLocationNotFound)
	}

	hits, err := c.cache.GetMany(ctx, []string{key})
	if err != nil {
		log.Printf("geocode cache read failed: key=%q err=%v", key, err)
	} else if p, ok := hits[key]; ok {
		return p, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Shared by every waiter on key; one caller's cancellation must not fail the rest.
		sharedCtx := context.WithoutCancel(ctx)

		p, err := c.next.Resolve(sharedCtx, key)
		if err != nil {
			return domain.Point{}, err
		}

		if err := c.cache.PutMany(sharedCtx, map[string]domain.Point{key: p}); err != nil {
			log.Printf("geocode cache write failed: key=%q err=%v", key, err)
		}
		return p, nil
	})
	if err != nil {
		return domain.Point{}, fmt.Errorf("caching resolver: %w", err)
	}

	return v.(domain.Point), nil
}
