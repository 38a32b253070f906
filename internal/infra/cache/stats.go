package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookingjasa/booking-service/internal/domain"
)

const statsKey = "booking:stats"

// StatsCache holds the dashboard counters in redis for a short TTL.
// Redis is a cache only: misses and errors fall through to the
// database, and every booking write invalidates the key.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache builds a stats cache with the given TTL.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached counters, or (nil, false) on a miss or error.
func (c *StatsCache) Get(ctx context.Context) (*domain.BookingStats, bool) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var stats domain.BookingStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// Set stores the counters for the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats *domain.BookingStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached counters. Called after every booking write.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, statsKey).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
