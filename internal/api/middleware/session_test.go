package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func invokeCartSession(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	if header != "" {
		req.Header.Set(SessionHeader, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CartSession()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return c, rec
}

func TestCartSession_MintsIDWhenAbsent(t *testing.T) {
	c, rec := invokeCartSession(t, "")

	sid, ok := c.Get("cart_session").(string)
	if !ok || sid == "" {
		t.Fatalf("expected session id in context, got %v", c.Get("cart_session"))
	}
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("minted session id is not a uuid: %q", sid)
	}
	if got := rec.Header().Get(SessionHeader); got != sid {
		t.Fatalf("response header %q does not match context id %q", got, sid)
	}
}

func TestCartSession_EchoesExistingID(t *testing.T) {
	c, rec := invokeCartSession(t, "session-abc")

	if got := c.Get("cart_session"); got != "session-abc" {
		t.Fatalf("expected existing id to survive, got %v", got)
	}
	if got := rec.Header().Get(SessionHeader); got != "session-abc" {
		t.Fatalf("expected header to echo existing id, got %q", got)
	}
}
