package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

type stubIdentityService struct {
	registerErr   error
	loginErr      error
	federatedErr  error
	signOutErr    error
	revokedTokens []string
	lastFederated ports.FederatedInput
}

func (s *stubIdentityService) Register(_ context.Context, email, _ string, seller bool) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	role := domain.RoleBuyer
	if seller {
		role = domain.RoleSeller
	}
	return &domain.User{ID: "u1", Email: email, Role: role}, nil
}

func (s *stubIdentityService) Login(_ context.Context, email, _ string) (*ports.AuthResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "u1", Email: email, Role: domain.RoleSeller},
	}, nil
}

func (s *stubIdentityService) FederatedLogin(_ context.Context, input ports.FederatedInput) (*ports.AuthResult, error) {
	if s.federatedErr != nil {
		return nil, s.federatedErr
	}
	s.lastFederated = input
	return &ports.AuthResult{
		Token: "federated-token",
		User:  &domain.User{ID: "u2", Email: input.Email, Role: domain.RoleBuyer},
	}, nil
}

func (s *stubIdentityService) SignOut(_ context.Context, tokenID string, _ time.Time) error {
	if s.signOutErr != nil {
		return s.signOutErr
	}
	s.revokedTokens = append(s.revokedTokens, tokenID)
	return nil
}

func (s *stubIdentityService) ResolveRole(_ context.Context, _ string) (string, error) {
	return domain.RoleBuyer, nil
}

func authTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})
	c, rec := authTestContext(t, `{"email":"ana@example.com","password":"secret1","seller":true}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User == nil || !resp.User.Seller || resp.User.Email != "ana@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})

	cases := map[string]string{
		"missing email":  `{"password":"secret1"}`,
		"bad email":      `{"email":"nope","password":"secret1"}`,
		"short password": `{"email":"ana@example.com","password":"ab"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := authTestContext(t, body)
			err := h.Register(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{registerErr: domain.ErrUserExists})
	c, _ := authTestContext(t, `{"email":"ana@example.com","password":"secret1"}`)

	// Domain errors are returned raw for the central error handler to map.
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})
	c, rec := authTestContext(t, `{"email":"ana@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.User == nil || !resp.User.Seller {
		t.Fatalf("expected seller flag derived from role, got %+v", resp.User)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{loginErr: domain.ErrInvalidCredentials})
	c, _ := authTestContext(t, `{"email":"ana@example.com","password":"wrong1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Federated(t *testing.T) {
	stub := &stubIdentityService{}
	h := NewAuthHandler(stub)
	c, rec := authTestContext(t, `{"provider":"google","subject":"goog-123","email":"ana@example.com"}`)

	if err := h.Federated(c); err != nil {
		t.Fatalf("Federated returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFederated.Provider != "google" || stub.lastFederated.Subject != "goog-123" {
		t.Fatalf("assertion not forwarded: %+v", stub.lastFederated)
	}
}

func TestAuthHandler_Federated_UnknownProvider(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})
	c, _ := authTestContext(t, `{"provider":"myspace","subject":"x","email":"ana@example.com"}`)

	err := h.Federated(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported provider, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubIdentityService{}
	h := NewAuthHandler(stub)
	c, rec := authTestContext(t, "")
	c.Set("jti", "tok-1")
	c.Set("exp", time.Now().Add(time.Hour))

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(stub.revokedTokens) != 1 || stub.revokedTokens[0] != "tok-1" {
		t.Fatalf("expected token to be revoked, got %v", stub.revokedTokens)
	}
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})
	c, _ := authTestContext(t, "")

	err := h.Logout(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token claims, got %v", err)
	}
}
