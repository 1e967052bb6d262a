// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ridelink/ridelink/internal/platform/constants"
)

// RedisRevocationStore implements [RevocationStore] using Redis.
//
// # Key Taxonomy
//
//	auth:revoked_token:<jti>  — single denylisted token, TTL = remaining lifetime
//	auth:revoked_account:<id> — every token of the account, TTL = max lifetime
//
// Keys expire on their own once no live token could still carry the jti or
// account id, so the denylist never needs sweeping.
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a new Redis-backed [RevocationStore].
func NewRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
RevokeToken denylists a single token by its jti claim.

Parameters:
  - context: context.Context
  - jti: string
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (store *RedisRevocationStore) RevokeToken(context context.Context, jti string, ttl time.Duration) error {

	// Clamp: an already-expired token needs no denylist entry.
	if ttl <= 0 {
		return nil
	}

	key := constants.RedisPrefixRevokedToken + jti

	if err := store.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_token_failed: %w", err)
	}

	return nil
}

/*
IsTokenRevoked reports whether the jti is on the denylist.

Parameters:
  - context: context.Context
  - jti: string

Returns:
  - bool: Denylist membership
  - error: Connectivity failures
*/
func (store *RedisRevocationStore) IsTokenRevoked(context context.Context, jti string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + jti

	count, err := store.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_check_token_failed: %w", err)
	}

	return count > 0, nil
}

/*
RevokeAccount denylists every outstanding token of an account.

Parameters:
  - context: context.Context
  - accountID: int64
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (store *RedisRevocationStore) RevokeAccount(context context.Context, accountID int64, ttl time.Duration) error {
	key := fmt.Sprintf("%s%d", constants.RedisPrefixRevokedAccount, accountID)

	if err := store.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_account_failed: %w", err)
	}

	return nil
}

/*
IsAccountRevoked reports whether the account id is on the denylist.

Parameters:
  - context: context.Context
  - accountID: int64

Returns:
  - bool: Denylist membership
  - error: Connectivity failures
*/
func (store *RedisRevocationStore) IsAccountRevoked(context context.Context, accountID int64) (bool, error) {
	key := fmt.Sprintf("%s%d", constants.RedisPrefixRevokedAccount, accountID)

	count, err := store.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_check_account_failed: %w", err)
	}

	return count > 0, nil
}
