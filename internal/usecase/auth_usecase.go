// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"linkvault/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new principal.
type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

// SigninInput defines the data required for a principal to sign in.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserInput defines a partial update of the authenticated account.
// Nil fields are left untouched.
type EditUserInput struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

// --- Output DTOs ---

// SignupOutput returns the issued token after a successful signup.
// The created user is carried alongside so callers can expose a sanitized
// view; the HTTP contract itself is token-only (see DESIGN.md).
type SignupOutput struct {
	AccessToken string
	User        *entity.User
}

// SigninOutput returns the issued token after a successful signin.
type SigninOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup durably creates a principal and issues a bearer token.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Signin verifies credentials and issues a bearer token. No side effects.
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)

	// GetMe looks up the account behind an authenticated principal.
	GetMe(ctx context.Context, userID int64) (*entity.User, error)

	// EditMe applies a partial update to the authenticated principal's
	// account and returns the updated user.
	EditMe(ctx context.Context, userID int64, input *EditUserInput) (*entity.User, error)
}
