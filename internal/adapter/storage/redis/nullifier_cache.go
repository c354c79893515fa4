package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// NullifierCache implements ports.NullifierCache using plain Redis keys.
// Nullifiers never expire, so entries carry no TTL. The cache is a fast
// reject path only; Postgres remains the authoritative ledger.
type NullifierCache struct {
	client *goredis.Client
	prefix string
}

// NewNullifierCache creates a new Redis-backed nullifier cache.
func NewNullifierCache(client *goredis.Client) *NullifierCache {
	return &NullifierCache{
		client: client,
		prefix: "nullifier:",
	}
}

// Seen reports whether the nullifier token is in the cache.
func (c *NullifierCache) Seen(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("redis nullifier lookup: %w", err)
	}
	return n > 0, nil
}

// MarkUsed records the nullifier token in the cache. Called after the
// ledger commit succeeds, so losing the write only costs a fallthrough
// to Postgres on the next replay attempt.
func (c *NullifierCache) MarkUsed(ctx context.Context, token string) error {
	if err := c.client.Set(ctx, c.prefix+token, 1, 0).Err(); err != nil {
		return fmt.Errorf("redis nullifier mark: %w", err)
	}
	return nil
}
