package handler

import (
	"github.com/ecomfire/storefront-api/internal/core/domain"
)

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Stock:       p.Stock,
		SellerID:    p.SellerID,
	}
}

func toListResponse(products []domain.Product) listProductsResponse {
	items := make([]productResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(p)
	}
	return listProductsResponse{Data: items, Count: len(items)}
}
