package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// CartService applies the pure cart operations to the session's cart and
// persists the result. Each session has a single logical writer, so a
// load-mutate-save cycle is an atomic state replacement from the session's
// point of view.
type CartService struct {
	store   ports.CartStore
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewCartService(store ports.CartStore, catalog ports.CatalogRepository, logger zerolog.Logger) *CartService {
	return &CartService{store: store, catalog: catalog, logger: logger}
}

// Get returns the session's cart; unknown sessions yield an empty cart.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

// AddItem looks the product up in the catalog, snapshots it into the cart,
// and merges quantities when the product is already present.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, qty int) (*domain.Cart, error) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(*product, qty)
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("session", sessionID).Str("product_id", productID).Int("qty", qty).Msg("cart item added")
	return cart, nil
}

// UpdateQuantity clamps the new quantity into [1, stock of the snapshot].
// A product id absent from the cart is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, qty)
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the product from the cart; absent ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// Checkout is a placeholder: it reports the cart totals and mutates nothing.
// There is no payment engine and no stock reservation behind it.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*ports.CheckoutResult, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("session", sessionID).Float64("total", cart.Total()).Msg("checkout requested")
	return &ports.CheckoutResult{
		Total:     cart.Total(),
		ItemCount: cart.Count(),
	}, nil
}
