package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisGeocodeKeyPrefix = "geocode:"

// RedisGeocodeCache stores resolved points in Redis as JSON with a TTL, so
// several server instances share address book lookups instead of each one
// querying the database.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached points for the given addresses.
func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Point, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueKeys(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Point{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, a := range uniq {
		keys = append(keys, redisGeocodeKeyPrefix+a)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Point, len(uniq))
	for i, v := range vals {
		// Missing keys come back as nil.
		s, ok := v.(string)
		if !ok {
			continue
		}

		var p domain.Point
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = p
	}

	return out, nil
}

// Store address -> point mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Point) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.TxPipeline()
	for addr, p := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}

		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("insert geocode cache address=%q: encode: %w", addr, err)
		}
		pipe.Set(ctx, redisGeocodeKeyPrefix+addr, b, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis exec: %w", err)
	}

	return nil
}
