package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for record counts.
const (
	PatientCountKey = "patient:count"
	DoctorCountKey  = "doctor:count"
)

const countCacheTTL = 60 * time.Second

// CountCache is a read-through cache for record counts backed by Redis.
// Every failure degrades to a miss so callers fall back to the database.
type CountCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewCountCache(client *redis.Client, log *logrus.Logger) *CountCache {
	return &CountCache{
		client: client,
		log:    log,
	}
}

// Get returns the cached count and whether it was present.
func (c *CountCache) Get(ctx context.Context, key string) (int64, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read count cache %s: %+v", key, err)
		}
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		c.log.Warnf("Corrupt count cache value %s=%q: %+v", key, val, err)
		return 0, false
	}

	return count, true
}

// Set stores a count with the cache TTL.
func (c *CountCache) Set(ctx context.Context, key string, count int64) {
	if err := c.client.Set(ctx, key, count, countCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write count cache %s: %+v", key, err)
	}
}

// Invalidate drops a cached count after a create or delete.
func (c *CountCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Failed to invalidate count cache %s: %+v", key, err)
	}
}
