package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a token id has been signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth validates the bearer JWT, rejects revoked tokens, and injects the
// identity claims into the request context.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			jti, _ := claims["jti"].(string)
			if jti != "" {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), jti)
				if err != nil {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "revocation check unavailable")
				}
				if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("uid", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			c.Set("jti", jti)
			if exp, ok := claims["exp"].(float64); ok {
				c.Set("exp", time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}
