package handler

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageURL"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SellerID    string  `json:"sellerId,omitempty"`
}

type listProductsResponse struct {
	Data  []productResponse `json:"data"`
	Count int               `json:"count"`
}

// facetsResponse carries the filter panel's derived data: the deduplicated
// category list (with the "Todos" sentinel prepended) and the price-range
// initializer.
type facetsResponse struct {
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"max_price"`
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	ImageURL    string  `json:"imageURL"    validate:"required,url"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}
