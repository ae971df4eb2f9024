package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/api/metrics"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// DashboardHandler serves the seller's product-management surface:
// list, create, and delete. There is deliberately no update operation and no
// seller-role gate on these routes — authentication supplies the seller id,
// nothing more.
type DashboardHandler struct {
	catalog ports.CatalogService
}

func NewDashboardHandler(catalog ports.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalog: catalog}
}

// ListProducts handles GET /v1/dashboard/products — the signed-in seller's
// own products.
//
// @Summary      List own products
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProductsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard/products [get]
func (h *DashboardHandler) ListProducts(c echo.Context) error {
	uid, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	products, err := h.catalog.ListSellerProducts(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	metrics.CatalogQueryDuration.WithLabelValues("list_seller").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toListResponse(products))
}

// CreateProduct handles POST /v1/dashboard/products.
//
// @Summary      Create a product
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/dashboard/products [post]
func (h *DashboardHandler) CreateProduct(c echo.Context) error {
	uid, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Stock:       req.Stock,
		SellerID:    uid,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	return c.JSON(http.StatusCreated, toProductResponse(*product))
}

// DeleteProduct handles DELETE /v1/dashboard/products/:id.
//
// @Summary      Delete a product
// @Tags         dashboard
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [delete]
func (h *DashboardHandler) DeleteProduct(c echo.Context) error {
	if _, _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
