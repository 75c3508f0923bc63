// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/ponydex/internal/platform/constants"
)

// RedisRepository implements [Repository] using Redis as a durable key-value store.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a new Redis-backed preference repository.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

/*
Get retrieves the preferences saved by a client.

Returns:
  - Preferences: Saved state
  - bool: false if the client never saved anything
  - error: Connectivity or decoding errors
*/
func (repository *RedisRepository) Get(context context.Context, clientID string) (Preferences, bool, error) {
	raw, err := repository.client.Get(context, constants.RedisPrefixPreference+clientID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Preferences{}, false, nil
		}
		return Preferences{}, false, fmt.Errorf("redis_preference_get_failed: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return Preferences{}, false, fmt.Errorf("redis_preference_decode_failed: %w", err)
	}
	return prefs, true, nil
}

// Save stores the preferences with no expiry.
func (repository *RedisRepository) Save(context context.Context, clientID string, prefs Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("redis_preference_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, constants.RedisPrefixPreference+clientID, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis_preference_set_failed: %w", err)
	}
	return nil
}
