package ports

import (
	"context"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// CatalogRepository defines persistence operations for the products collection.
type CatalogRepository interface {
	// List returns every product in the catalog.
	List(ctx context.Context) ([]domain.Product, error)
	// FindByID retrieves a single product by its server-assigned id.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// ListBySeller returns the products owned by sellerID (store-side filter).
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
	// Insert stores a new product and returns the assigned id.
	Insert(ctx context.Context, p *domain.Product) (string, error)
	// Delete removes a product by id.
	Delete(ctx context.Context, id string) error
}
