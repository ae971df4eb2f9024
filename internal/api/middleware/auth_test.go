package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

type stubRevocation struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocation) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, checker RevocationChecker, authorization string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(testSecret, checker)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":   "u1",
		"email": "ana@example.com",
		"role":  "seller",
		"jti":   "tok-1",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := invokeAuth(t, &stubRevocation{}, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if c.Get("uid") != "u1" || c.Get("email") != "ana@example.com" || c.Get("role") != "seller" {
		t.Fatalf("claims not injected: uid=%v email=%v role=%v", c.Get("uid"), c.Get("email"), c.Get("role"))
	}
	if c.Get("jti") != "tok-1" {
		t.Fatalf("expected jti tok-1, got %v", c.Get("jti"))
	}
	if _, ok := c.Get("exp").(time.Time); !ok {
		t.Fatalf("expected exp to be a time.Time, got %T", c.Get("exp"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubRevocation{}, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubRevocation{}, "Token abc")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signedToken(t, "other-secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := invokeAuth(t, &stubRevocation{}, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := invokeAuth(t, &stubRevocation{}, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"jti": "tok-out",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := invokeAuth(t, &stubRevocation{revoked: map[string]bool{"tok-out": true}}, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevocationCheckUnavailable(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"jti": "tok-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := invokeAuth(t, &stubRevocation{err: errors.New("redis down")}, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusServiceUnavailable)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}
