package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records signed-out token ids until their natural expiry.
// Key format: revoked:<jti>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks the token id as signed out for ttl (the token's remaining life).
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been signed out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(tokenID string) string {
	return "revoked:" + tokenID
}
