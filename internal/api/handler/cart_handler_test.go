package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// stubCartService applies the real domain cart operations to a single
// in-memory cart, so handler tests exercise the actual merge and clamp rules.
type stubCartService struct {
	cart domain.Cart
}

func (s *stubCartService) Get(_ context.Context, _ string) (*domain.Cart, error) {
	return &s.cart, nil
}

func (s *stubCartService) AddItem(_ context.Context, _, productID string, qty int) (*domain.Cart, error) {
	s.cart.Add(domain.Product{ID: productID, Name: "item " + productID, Price: 10, Stock: 5}, qty)
	return &s.cart, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _, productID string, qty int) (*domain.Cart, error) {
	s.cart.UpdateQuantity(productID, qty)
	return &s.cart, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, _, productID string) (*domain.Cart, error) {
	s.cart.Remove(productID)
	return &s.cart, nil
}

func (s *stubCartService) Clear(_ context.Context, _ string) error {
	s.cart.Clear()
	return nil
}

func (s *stubCartService) Checkout(_ context.Context, _ string) (*ports.CheckoutResult, error) {
	return &ports.CheckoutResult{Total: s.cart.Total(), ItemCount: s.cart.Count()}, nil
}

func cartTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("cart_session", "sess-1")
	return c, rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestCartHandler_AddItem(t *testing.T) {
	h := NewCartHandler(&stubCartService{})
	c, rec := cartTestContext(t, http.MethodPost, `{"product_id":"p1","quantity":2}`)

	if err := h.AddItem(c); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeCart(t, rec)
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart payload: %+v", resp.Items)
	}
}

func TestCartHandler_UpdateQuantity_ZeroClampsToOne(t *testing.T) {
	stub := &stubCartService{}
	stub.cart.Add(domain.Product{ID: "p1", Price: 10, Stock: 5}, 3)
	h := NewCartHandler(stub)

	// 0 is a valid request value; the cart clamps it to the lower bound.
	c, rec := cartTestContext(t, http.MethodPatch, `{"quantity":0}`)
	c.SetParamNames("product_id")
	c.SetParamValues("p1")

	if err := h.UpdateQuantity(c); err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeCart(t, rec)
	if resp.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", resp.Items[0].Quantity)
	}
}

func TestCartHandler_UpdateQuantity_NegativeClampsToOne(t *testing.T) {
	stub := &stubCartService{}
	stub.cart.Add(domain.Product{ID: "p1", Price: 10, Stock: 5}, 3)
	h := NewCartHandler(stub)

	c, rec := cartTestContext(t, http.MethodPatch, `{"quantity":-4}`)
	c.SetParamNames("product_id")
	c.SetParamValues("p1")

	if err := h.UpdateQuantity(c); err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}

	resp := decodeCart(t, rec)
	if resp.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", resp.Items[0].Quantity)
	}
}

func TestCartHandler_MissingSession(t *testing.T) {
	h := NewCartHandler(&stubCartService{})
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without cart session, got %v", err)
	}
}
