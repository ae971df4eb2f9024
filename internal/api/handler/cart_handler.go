package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/api/metrics"
	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// CartHandler serves the session cart. Every route runs behind the
// CartSession middleware, which mints the session id.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the session cart
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Session  header    string  false  "Shopping session id (minted when absent)"
// @Success      200             {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	cart, err := h.cart.Get(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session  header    string              false  "Shopping session id"
// @Param        body            body      addCartItemRequest  true   "Product and quantity"
// @Success      200             {object}  cartResponse
// @Failure      400             {object}  errorResponse
// @Failure      404             {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cart.AddItem(c.Request().Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// UpdateQuantity handles PATCH /v1/cart/items/:product_id. Quantities are
// clamped into [1, stock of the snapshot]; unknown ids are a no-op.
//
// @Summary      Update a cart item's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session  header    string                 false  "Shopping session id"
// @Param        product_id      path      string                 true   "Product id"
// @Param        body            body      updateCartItemRequest  true   "New quantity"
// @Success      200             {object}  cartResponse
// @Failure      400             {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [patch]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cart.UpdateQuantity(c.Request().Context(), sid, c.Param("product_id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveItem handles DELETE /v1/cart/items/:product_id.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Session  header    string  false  "Shopping session id"
// @Param        product_id      path      string  true   "Product id"
// @Success      200             {object}  cartResponse
// @Router       /v1/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	cart, err := h.cart.RemoveItem(c.Request().Context(), sid, c.Param("product_id"))
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Param        X-Cart-Session  header  string  false  "Shopping session id"
// @Success      204             "cart cleared"
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	if err := h.cart.Clear(c.Request().Context(), sid); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /v1/cart/checkout. Checkout is a placeholder: there
// is no payment engine behind it and nothing is mutated.
//
// @Summary      Checkout (placeholder)
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Session  header    string  false  "Shopping session id"
// @Success      202             {object}  checkoutResponse
// @Router       /v1/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	sid, err := ctxCartSession(c)
	if err != nil {
		return err
	}

	result, err := h.cart.Checkout(c.Request().Context(), sid)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("checkout").Inc()
	return c.JSON(http.StatusAccepted, checkoutResponse{
		Message:   "checkout is not implemented; no charge was made",
		Total:     result.Total,
		ItemCount: result.ItemCount,
	})
}

func toCartResponse(cart *domain.Cart) cartResponse {
	items := make([]cartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = cartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Product.Price * float64(item.Quantity),
		}
	}
	return cartResponse{Items: items, Total: cart.Total()}
}
