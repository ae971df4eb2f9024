package ports

import (
	"context"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// CheckoutResult summarizes the cart at checkout time. Checkout is a
// placeholder: it computes totals and changes nothing.
type CheckoutResult struct {
	Total     float64
	ItemCount int
}

// CartService defines the session cart use cases.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// AddItem snapshots the product into the cart, merging quantities when
	// the product is already present. qty < 1 is treated as 1.
	AddItem(ctx context.Context, sessionID, productID string, qty int) (*domain.Cart, error)
	// UpdateQuantity clamps qty into [1, stock]; unknown product ids in the
	// cart are a no-op.
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error)
}
