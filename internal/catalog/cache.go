// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/ponydex/internal/platform/constants"
)

// Cache stores raw catalog response bodies keyed by request path.
type Cache interface {
	Get(context context.Context, key string) ([]byte, bool, error)
	Set(context context.Context, key string, body []byte, ttl time.Duration) error
}

// RedisCache implements [Cache] using Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed catalog cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get returns the cached body for a request path.

Returns:
  - []byte: Cached response body
  - bool: false on a cache miss
  - error: Connectivity errors
*/
func (cache *RedisCache) Get(context context.Context, key string) ([]byte, bool, error) {
	body, err := cache.client.Get(context, constants.RedisPrefixCatalog+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_catalog_get_failed: %w", err)
	}
	return body, true, nil
}

// Set stores a response body with a TTL.
func (cache *RedisCache) Set(context context.Context, key string, body []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, constants.RedisPrefixCatalog+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("redis_catalog_set_failed: %w", err)
	}
	return nil
}
