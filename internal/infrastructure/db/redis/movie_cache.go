package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myflix/myflix-api/internal/api/metrics"
	"github.com/myflix/myflix-api/internal/core/domain"
)

const catalogTTL = 5 * time.Minute

// MovieCache is a read-through cache for catalog queries backed by Redis.
// Entries expire after catalogTTL; there is no explicit invalidation because
// the catalog is written out-of-band.
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// GetMovies returns the cached slice for key, or (nil, nil) on a miss.
func (c *MovieCache) GetMovies(ctx context.Context, key string) ([]*domain.Movie, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var movies []*domain.Movie
	if err := json.Unmarshal(payload, &movies); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return movies, nil
}

// SetMovies stores the slice under key with the catalog TTL.
func (c *MovieCache) SetMovies(ctx context.Context, key string, movies []*domain.Movie) error {
	payload, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), payload, catalogTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *MovieCache) key(key string) string {
	return "catalog:" + key
}
