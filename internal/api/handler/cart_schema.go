package handler

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Quantity defaults to 1 when omitted or below 1.
	Quantity int `json:"quantity"`
}

type updateCartItemRequest struct {
	// Quantity may be any integer; out-of-range values are clamped into
	// [1, stock] by the cart, so 0 and negatives are valid input.
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type checkoutResponse struct {
	Message   string  `json:"message"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}
