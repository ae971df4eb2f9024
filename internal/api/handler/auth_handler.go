package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomfire/storefront-api/internal/api/metrics"
	"github.com/ecomfire/storefront-api/internal/core/domain"
	"github.com/ecomfire/storefront-api/internal/core/ports"
)

// AuthHandler handles registration, the two sign-in paths, and sign-out.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register creates a new account and writes its role document.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.identity.Register(c.Request().Context(), req.Email, req.Password, req.Seller)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user)})
}

// Login authenticates with email and password and returns a signed token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// Federated signs in with a gateway-verified federated assertion. A first
// visit creates the account with the buyer role; a returning seller keeps
// seller (the role document is merged, never clobbered).
//
// @Summary      Federated sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      federatedRequest  true  "Verified federated assertion"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/federated [post]
func (h *AuthHandler) Federated(c echo.Context) error {
	var req federatedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.FederatedLogin(c.Request().Context(), ports.FederatedInput{
		Provider: req.Provider,
		Subject:  req.Subject,
		Email:    req.Email,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("federated", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("federated", "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// Logout revokes the presented token until its natural expiry.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "signed out"
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, expiresAt, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.identity.SignOut(c.Request().Context(), jti, expiresAt); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("logout", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:     u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Seller: u.IsSeller(),
	}
}
