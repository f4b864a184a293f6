/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package callbackstore keeps the durable idempotence markers the callback
// endpoint relies on. A marker survives process restarts, so a delegate
// identity provider retrying the callback never triggers a second
// notification.
package callbackstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vc_auth_callback"

type redisClient interface {
	API() redis.UniversalClient
}

// Store records one-shot markers with expiration.
type Store struct {
	redisClient redisClient
	defaultTTL  time.Duration
}

// New creates Store.
func New(redisClient redisClient, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		defaultTTL:  ttl,
	}
}

// SetIfNotExist sets the marker for key and reports whether this call created
// it. A zero ttl falls back to the store default.
func (s *Store) SetIfNotExist(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	created, err := s.redisClient.API().SetNX(ctx, s.resolveRedisKey(key), true, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis set callback marker: %w", err)
	}

	return created, nil
}

func (s *Store) resolveRedisKey(key string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, key)
}
