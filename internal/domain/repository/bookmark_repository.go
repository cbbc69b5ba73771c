package repository

import (
	"context"
	"errors"

	"linkvault/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when a bookmark is not found.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines the standard operations for bookmark persistence.
//
// The ByOwner variants scope the filter inside the SQL query itself, so no
// foreign record ever crosses the ownership boundary, not even transiently.
type BookmarkRepository interface {
	// Create persists a new bookmark.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByOwner retrieves all bookmarks belonging to one user.
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error)

	// FindByIDAndOwner retrieves a single bookmark only if it belongs to ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Bookmark, error)

	// FindByID retrieves a bookmark regardless of owner. Used by mutations
	// that pass the result through the ownership guard before acting.
	FindByID(ctx context.Context, id int64) (*entity.Bookmark, error)

	// Update modifies an existing bookmark.
	Update(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete removes a bookmark by its ID.
	Delete(ctx context.Context, id int64) error
}
