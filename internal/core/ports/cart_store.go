package ports

import (
	"context"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// CartStore persists session carts. Implementations are ephemeral by
// contract: entries expire with the shopping session and are never written
// to the catalog database.
type CartStore interface {
	// Get loads the cart for sessionID. An unknown session yields an empty
	// cart, not an error.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// Save stores the cart and refreshes its session TTL.
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	// Delete drops the session's cart.
	Delete(ctx context.Context, sessionID string) error
}
