package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CategoryAll is the sentinel category that bypasses category filtering.
const CategoryAll = "Todos"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidStock = errors.New("invalid stock value")

// Product is a catalog entry. The client only ever holds read-only copies;
// the directory service owns the documents and assigns ids.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageURL"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SellerID    string  `json:"sellerId,omitempty"`
}

// ParseStock normalizes the stock field to an integer. Legacy documents store
// stock as a string, newer ones as a number; both forms are accepted here and
// nowhere else. Anything that does not parse is a data-integrity error.
func ParseStock(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidStock)
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidStock, n)
		}
		return int(n), nil
	case string:
		s := strings.TrimSpace(n)
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidStock, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidStock, v)
	}
}

// MatchesFilter reports whether the product passes both the category and the
// inclusive price-range predicates (logical AND). An empty category or the
// CategoryAll sentinel disables the category predicate; maxPrice <= 0 disables
// the upper bound.
func (p Product) MatchesFilter(category string, minPrice, maxPrice float64) bool {
	if category != "" && category != CategoryAll && p.Category != category {
		return false
	}
	if p.Price < minPrice {
		return false
	}
	if maxPrice > 0 && p.Price > maxPrice {
		return false
	}
	return true
}

// UniqueCategories returns the distinct categories across products, preserving
// first-seen order. Shared by the storefront filter panel and the dashboard's
// category selector.
func UniqueCategories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// MaxPrice returns the highest price across products, or 0 for an empty set.
// Used to (re)initialize the storefront's price-range upper bound.
func MaxPrice(products []Product) float64 {
	max := 0.0
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}
