package impl

import (
	"context"
	"log/slog"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	txManager    repository.TransactionManager
	guard        *service.OwnershipGuard
	logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	txManager repository.TransactionManager,
	guard *service.OwnershipGuard,
	logger *slog.Logger,
) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		txManager:    txManager,
		guard:        guard,
		logger:       logger,
	}
}

// List returns all bookmarks of one owner. The filter is part of the query.
func (srv *bookmarkService) List(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// GetByID returns a single bookmark, scoped to the owner at the query level.
// A non-owner gets the same not-found as a nonexistent id.
func (srv *bookmarkService) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindByIDAndOwner(ctx, bookmarkID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrBookmarkNotFound.WrapMessage("get bookmark failed")
		}

		return nil, errors.Wrap(err, "failed to get bookmark")
	}

	return bookmark, nil
}

// Create persists a new bookmark. The owner is stamped from the
// authenticated principal; a client-supplied owner field is never trusted.
func (srv *bookmarkService) Create(ctx context.Context, ownerID int64, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		OwnerID:     ownerID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		srv.logger.Error("Failed to create bookmark", "error", err, "ownerID", ownerID)

		return nil, errors.Wrap(err, "failed to create bookmark")
	}
	srv.logger.Debug("Bookmark created", "bookmarkID", bookmark.ID, "ownerID", ownerID)

	return bookmark, nil
}

// Edit loads the bookmark, passes it through the ownership guard and only
// then mutates, all inside one transaction. Concurrent edits to the same
// bookmark resolve as last-writer-wins.
func (srv *bookmarkService) Edit(ctx context.Context, ownerID, bookmarkID int64, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	var edited *entity.Bookmark

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.BookmarkRepo()

		bookmark, err := srv.loadGuarded(ctx, repo, ownerID, bookmarkID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			bookmark.Title = *input.Title
		}
		if input.Link != nil {
			bookmark.Link = *input.Link
		}
		if input.Description != nil {
			bookmark.Description = *input.Description
		}

		if err := repo.Update(ctx, bookmark); err != nil {
			return errors.Wrap(err, "failed to update bookmark")
		}
		edited = bookmark

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Debug("Bookmark edited", "bookmarkID", bookmarkID, "ownerID", ownerID)

	return edited, nil
}

// Delete loads the bookmark, passes it through the ownership guard and only
// then deletes, all inside one transaction.
func (srv *bookmarkService) Delete(ctx context.Context, ownerID, bookmarkID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.BookmarkRepo()

		if _, err := srv.loadGuarded(ctx, repo, ownerID, bookmarkID); err != nil {
			return err
		}

		if err := repo.Delete(ctx, bookmarkID); err != nil {
			return errors.Wrap(err, "failed to delete bookmark")
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.logger.Debug("Bookmark deleted", "bookmarkID", bookmarkID, "ownerID", ownerID)

	return nil
}

// loadGuarded fetches a bookmark by id and authorizes the principal against
// it. An absent bookmark takes the same path as a non-owned one, so the
// caller can never tell whether a foreign id exists; the distinction is
// logged at debug level only.
func (srv *bookmarkService) loadGuarded(ctx context.Context, repo repository.BookmarkRepository, ownerID, bookmarkID int64) (*entity.Bookmark, error) {
	bookmark, err := repo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			srv.logger.Debug("Bookmark access denied, no such bookmark", "bookmarkID", bookmarkID, "principalID", ownerID)

			return nil, srv.guard.Authorize(ownerID, nil)
		}

		return nil, errors.Wrap(err, "failed to load bookmark")
	}

	if err := srv.guard.Authorize(ownerID, bookmark); err != nil {
		srv.logger.Debug("Bookmark access denied, not the owner", "bookmarkID", bookmarkID, "principalID", ownerID)

		return nil, err
	}

	return bookmark, nil
}
