package middleware

import (
	"strings"

	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated principal is stored.
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// Any failure (missing header, malformed token, bad signature, expired token)
// yields the same INVALID_TOKEN 401 envelope; only the details line says which
// request-shape check tripped, never anything about registered accounts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid or expired token")
		}

		// Set the principal on the context for handlers to use.
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)

		return next(c)
	}
}
