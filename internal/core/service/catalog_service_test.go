package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

type stubCatalogRepo struct {
	products []domain.Product
	nextID   int
	listErr  error
}

func (r *stubCatalogRepo) List(_ context.Context) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubCatalogRepo) ListBySeller(_ context.Context, sellerID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) Insert(_ context.Context, p *domain.Product) (string, error) {
	r.nextID++
	id := string(rune('a' + r.nextID - 1))
	stored := *p
	stored.ID = id
	r.products = append(r.products, stored)
	return id, nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func browsingFixture() *stubCatalogRepo {
	return &stubCatalogRepo{products: []domain.Product{
		{ID: "1", Name: "cheap a", Category: "A", Price: 10, Stock: 5},
		{ID: "2", Name: "mid a", Category: "A", Price: 20, Stock: 5},
		{ID: "3", Name: "pricey b", Category: "B", Price: 30, Stock: 5},
	}}
}

func TestCatalogService_ListProducts_CategoryAndPrice(t *testing.T) {
	svc := NewCatalogService(browsingFixture(), zerolog.Nop())

	got, err := svc.ListProducts(context.Background(), ports.ProductFilter{
		Category: "A",
		MinPrice: 15,
		MaxPrice: 30,
	})
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected exactly product 2, got %+v", got)
	}
}

func TestCatalogService_ListProducts_TodosBypassesCategory(t *testing.T) {
	svc := NewCatalogService(browsingFixture(), zerolog.Nop())

	got, err := svc.ListProducts(context.Background(), ports.ProductFilter{
		Category: domain.CategoryAll,
		MinPrice: 15,
		MaxPrice: 30,
	})
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected products 2 and 3, got %+v", got)
	}
}

func TestCatalogService_ListProducts_NoFilterReturnsAll(t *testing.T) {
	svc := NewCatalogService(browsingFixture(), zerolog.Nop())

	got, err := svc.ListProducts(context.Background(), ports.ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 products, got %d", len(got))
	}
}

func TestCatalogService_ListProducts_PropagatesError(t *testing.T) {
	wantErr := errors.New("store down")
	svc := NewCatalogService(&stubCatalogRepo{listErr: wantErr}, zerolog.Nop())

	if _, err := svc.ListProducts(context.Background(), ports.ProductFilter{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestCatalogService_Facets(t *testing.T) {
	svc := NewCatalogService(browsingFixture(), zerolog.Nop())

	facets, err := svc.Facets(context.Background())
	if err != nil {
		t.Fatalf("Facets returned error: %v", err)
	}
	if len(facets.Categories) != 2 || facets.Categories[0] != "A" || facets.Categories[1] != "B" {
		t.Fatalf("unexpected categories: %v", facets.Categories)
	}
	if facets.MaxPrice != 30 {
		t.Fatalf("expected max price 30, got %v", facets.MaxPrice)
	}
}

func TestCatalogService_CreateAndDeleteProduct(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:        "lamp",
		Description: "desk lamp",
		Category:    "home",
		ImageURL:    "https://img.example/lamp.png",
		Price:       25,
		Stock:       4,
		SellerID:    "seller-1",
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.SellerID != "seller-1" {
		t.Fatalf("seller id not carried: %+v", created)
	}

	if err := svc.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc := NewCatalogService(browsingFixture(), zerolog.Nop())

	if _, err := svc.GetProduct(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_ListSellerProducts(t *testing.T) {
	repo := browsingFixture()
	repo.products[0].SellerID = "s1"
	repo.products[1].SellerID = "s2"
	svc := NewCatalogService(repo, zerolog.Nop())

	got, err := svc.ListSellerProducts(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ListSellerProducts returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only seller s1's product, got %+v", got)
	}
}
