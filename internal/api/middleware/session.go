package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHeader carries the opaque shopping-session id. The server mints one
// on first cart touch; clients echo it back on every subsequent cart call.
const SessionHeader = "X-Cart-Session"

// CartSession ensures every request through it carries a shopping-session id.
// Freshly minted ids are returned in the response header so the client can
// pick them up.
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := c.Request().Header.Get(SessionHeader)
			if sid == "" {
				sid = uuid.NewString()
			}
			c.Set("cart_session", sid)
			c.Response().Header().Set(SessionHeader, sid)
			return next(c)
		}
	}
}
