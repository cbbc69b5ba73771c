package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
// UserID doubles as the registered "sub" claim.
type Claims struct {
	UserID int64  `json:"sub"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are self-contained: validation is pure and requires no store lookup.
type TokenService interface {
	// Issue creates a signed access token binding the user's id and email,
	// valid for the configured lifetime.
	Issue(userID int64, email string) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims. Malformed, tampered and expired tokens all fail.
	Validate(tokenString string) (*Claims, error)
}
