package usecase

import (
	"context"

	"linkvault/internal/domain/entity"
)

// CreateBookmarkInput defines the data required to create a bookmark.
// The owner is never part of the input: it is stamped from the
// authenticated principal.
type CreateBookmarkInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description"`
}

// EditBookmarkInput defines a partial update; nil fields are left unchanged.
type EditBookmarkInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

// BookmarkUsecase defines owner-scoped CRUD on bookmarks.
// Every operation takes the authenticated principal's id; mutations pass the
// loaded resource through the ownership guard before acting.
type BookmarkUsecase interface {
	List(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error)
	GetByID(ctx context.Context, ownerID, bookmarkID int64) (*entity.Bookmark, error)
	Create(ctx context.Context, ownerID int64, input *CreateBookmarkInput) (*entity.Bookmark, error)
	Edit(ctx context.Context, ownerID, bookmarkID int64, input *EditBookmarkInput) (*entity.Bookmark, error)
	Delete(ctx context.Context, ownerID, bookmarkID int64) error
}
