package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-doctor-directory/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisResultKeyPrefix namespaces memoized pipeline results.
	RedisResultKeyPrefix = "directory:results:"

	// Timeout for individual Redis operations
	resultCacheTimeout = 500 * time.Millisecond
)

// ResultCache memoizes pipeline results as ordered record IDs. A cache is
// only an optimization: lookups that fail behave like misses.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string)
}

// ResultCacheKey scopes a canonical filter query to one store generation so
// a reload never serves results computed from older records.
func ResultCacheKey(generation, canonicalQuery string) string {
	return fmt.Sprintf("%s%s:%s", RedisResultKeyPrefix, generation, canonicalQuery)
}

type noopResultCache struct{}

// NewNoopResultCache returns a cache that never stores anything.
func NewNoopResultCache() ResultCache {
	return noopResultCache{}
}

func (noopResultCache) Get(context.Context, string) ([]string, bool) { return nil, false }

func (noopResultCache) Set(context.Context, string, []string) {}

type redisResultCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewRedisResultCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) ResultCache {
	return &redisResultCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisResultCache) Get(ctx context.Context, key string) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, resultCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordResultCacheLookup("miss")
		return nil, false
	}
	if err != nil {
		metrics.RecordResultCacheLookup("error")
		c.log.Warnf("Failed to read result cache key %s: %+v", key, err)
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		metrics.RecordResultCacheLookup("error")
		c.log.Warnf("Failed to decode result cache key %s: %+v", key, err)
		return nil, false
	}

	metrics.RecordResultCacheLookup("hit")
	c.log.Debugf("Result cache hit for %s", key)
	return ids, true
}

func (c *redisResultCache) Set(ctx context.Context, key string, ids []string) {
	ctx, cancel := context.WithTimeout(ctx, resultCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(ids)
	if err != nil {
		c.log.Warnf("Failed to encode result cache value: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write result cache key %s: %+v", key, err)
	}
}
