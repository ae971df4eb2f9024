package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/api/metrics"
	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// CatalogHandler serves the storefront's browsing endpoints.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/products with optional category and price predicates.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category   query     string  false  "Exact category; 'Todos' or empty returns all"
// @Param        min_price  query     number  false  "Inclusive lower price bound"
// @Param        max_price  query     number  false  "Inclusive upper price bound"
// @Success      200        {object}  listProductsResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return err
	}

	start := time.Now()
	products, err := h.catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	metrics.CatalogQueryDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toListResponse(products))
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	start := time.Now()
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.CatalogQueryDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Facets handles GET /v1/catalog/facets: the category list and the maximum
// price the filter panel initializes its range slider with.
//
// @Summary      Catalog facets for the filter panel
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  facetsResponse
// @Router       /v1/catalog/facets [get]
func (h *CatalogHandler) Facets(c echo.Context) error {
	start := time.Now()
	facets, err := h.catalog.Facets(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.CatalogQueryDuration.WithLabelValues("facets").Observe(time.Since(start).Seconds())

	categories := append([]string{domain.CategoryAll}, facets.Categories...)
	return c.JSON(http.StatusOK, facetsResponse{
		Categories: categories,
		MaxPrice:   facets.MaxPrice,
	})
}

func parseProductFilter(c echo.Context) (ports.ProductFilter, error) {
	filter := ports.ProductFilter{Category: c.QueryParam("category")}

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "min_price must be a number")
		}
		filter.MinPrice = v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
		}
		filter.MaxPrice = v
	}
	return filter, nil
}
