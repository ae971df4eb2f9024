package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// CatalogService implements product browsing and the seller dashboard's
// create/delete operations. There is intentionally no update operation.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts fetches the full catalog and applies the browsing predicates:
// exact category match (bypassed by the "Todos" sentinel) AND inclusive
// price range.
func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.MatchesFilter(filter.Category, filter.MinPrice, filter.MaxPrice) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProduct retrieves a single product; an unknown id is an explicit
// not-found error rather than a blank state.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ListSellerProducts returns the products owned by sellerID.
func (s *CatalogService) ListSellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// Facets derives the deduplicated category list and the maximum price across
// the full catalog. Both the filter panel and the dashboard's category
// selector read from here.
func (s *CatalogService) Facets(ctx context.Context) (*ports.CatalogFacets, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.CatalogFacets{
		Categories: domain.UniqueCategories(products),
		MaxPrice:   domain.MaxPrice(products),
	}, nil
}

// CreateProduct stores a new catalog entry for the seller dashboard.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Stock:       input.Stock,
		SellerID:    input.SellerID,
	}

	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}
	product.ID = id

	s.logger.Info().Str("product_id", id).Str("seller_id", input.SellerID).Msg("product created")
	return product, nil
}

// DeleteProduct removes a catalog entry by id.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
