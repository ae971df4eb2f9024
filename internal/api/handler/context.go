package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty uid proves
// the middleware ran.
func ctxIdentity(c echo.Context) (uid, email, role string, err error) {
	uid, _ = c.Get("uid").(string)
	if uid == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	role, _ = c.Get("role").(string)
	return uid, email, role, nil
}

// ctxToken extracts the token id and expiry injected by the Auth middleware,
// used by the sign-out path to revoke the token.
func ctxToken(c echo.Context) (jti string, expiresAt time.Time, err error) {
	jti, _ = c.Get("jti").(string)
	if jti == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing token id")
	}
	expiresAt, _ = c.Get("exp").(time.Time)
	return jti, expiresAt, nil
}

// ctxCartSession extracts the shopping-session id minted by the CartSession
// middleware.
func ctxCartSession(c echo.Context) (string, error) {
	sid, _ := c.Get("cart_session").(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing cart session")
	}
	return sid, nil
}
