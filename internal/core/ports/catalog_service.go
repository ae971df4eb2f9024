package ports

import (
	"context"

	"github.com/ecomfire/storefront-api/internal/core/domain"
)

// ProductFilter carries the storefront's browsing predicates. A product is
// returned iff it passes both the category and the price predicates.
type ProductFilter struct {
	Category string  // empty or domain.CategoryAll = no category filter
	MinPrice float64 // inclusive lower bound
	MaxPrice float64 // inclusive upper bound; <= 0 = unbounded
}

// CatalogFacets is the derived data the filter panel renders: the
// deduplicated category list and the price-range initializer.
type CatalogFacets struct {
	Categories []string
	MaxPrice   float64
}

// CreateProductInput carries all data for a dashboard product creation.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       float64
	Stock       int
	SellerID    string
}

// CatalogService defines the catalog use cases for the storefront and the
// seller dashboard.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListSellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error)
	Facets(ctx context.Context) (*CatalogFacets, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
