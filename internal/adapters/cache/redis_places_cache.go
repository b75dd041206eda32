package cache

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "places:"

// RedisPlacesCache is a Redis-backed cache of live places lookups.
// Entries expire through Redis TTLs, so stale rows never need purging.
type RedisPlacesCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlacesCache(client *redis.Client, ttl time.Duration) *RedisPlacesCache {
	return &RedisPlacesCache{Client: client, TTL: ttl}
}

// OpenRedis parses a redis:// URL and verifies the server answers PING.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return client, nil
}

// Get returns the cached institutions for q when present.
func (c *RedisPlacesCache) Get(
	ctx context.Context,
	q domain.QueryParameters,
) (_ []domain.Institution, _ bool, err error) {
	defer obs.Time(ctx, "places.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("places cache: redis client is nil")
	}

	payload, err := c.Client.Get(ctx, redisKeyPrefix+cacheKey(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get places cache: %w", err)
	}

	var items []domain.Institution
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("get places cache: decode payload: %w", err)
	}

	return items, true, nil
}

// Put stores institutions for q with the configured TTL.
func (c *RedisPlacesCache) Put(ctx context.Context, q domain.QueryParameters, items []domain.Institution) (err error) {
	defer obs.Time(ctx, "places.redis.Put")(&err)

	if c.Client == nil {
		return errors.New("places cache: redis client is nil")
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("insert places cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+cacheKey(q), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert places cache key=%q: %w", cacheKey(q), err)
	}

	return nil
}
