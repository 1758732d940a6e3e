package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"campushub/internal/httperr"
)

// UserIDKey is the echo context key under which the authenticated user's
// identifier is stored.
const UserIDKey = "userID"

// Middleware returns the bearer-token authentication middleware for
// protected routes. It runs strictly before business logic: requests with
// a missing, malformed, invalid, or expired token never reach a handler.
func (s *TokenService) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: s.secret,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		SuccessHandler: func(c echo.Context) {
			if token, ok := c.Get("user").(*jwt.Token); ok {
				if claims, ok := token.Claims.(*Claims); ok {
					c.Set(UserIDKey, claims.UserID)
				}
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return httperr.Unauthorized("Token expired")
			}
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return httperr.Unauthorized("Access denied. No valid token provided.")
			}
			return httperr.Unauthorized("Invalid token")
		},
	})
}

// UserID extracts the authenticated user's identifier attached by
// Middleware.
func UserID(c echo.Context) (string, error) {
	id, ok := c.Get(UserIDKey).(string)
	if !ok || id == "" {
		return "", httperr.Unauthorized("Unauthorized")
	}
	return id, nil
}
