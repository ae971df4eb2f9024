package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

const defaultCartTTL = 30 * time.Minute

// CartStore keeps one JSON cart document per shopping session, expiring with
// the session. Key format: cart:<session_id>. Carts never touch the catalog
// database; when the key expires the cart is simply gone, which is the
// intended lifetime.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a CartStore wrapping the given Redis client. A
// non-positive ttl falls back to defaultCartTTL.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

// Get loads the session's cart. An unknown session yields an empty cart.
func (s *CartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart get: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return &cart, nil
}

// Save stores the cart and refreshes the session TTL.
func (s *CartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// Delete drops the session's cart.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}

func (s *CartStore) key(sessionID string) string {
	return "cart:" + sessionID
}
