// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"linkvault/internal/domain/entity"
)

// Domain-specific errors for user persistence.
// The application layer handles these without depending on database-specific error shapes.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email
	// constraint. The uniqueness check is delegated to the store so two
	// concurrent signups resolve to exactly one success.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user as a single atomic insert. A unique
	// constraint violation on email is mapped to ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Update persists changes to an existing user. An email change that
	// collides with another account is mapped to ErrDuplicateEmail; a
	// missing row maps to ErrUserNotFound.
	Update(ctx context.Context, user *entity.User) error
}
