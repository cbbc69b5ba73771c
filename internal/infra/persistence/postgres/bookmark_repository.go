package postgres

import (
	"context"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the repository.BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{
		db: db,
	}
}

// Create persists a new bookmark.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	// Update the entity with generated values
	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// FindByOwner retrieves all bookmarks belonging to one user.
// The owner filter lives in the query itself, never applied after the fetch.
func (repo *bookmarkRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error) {
	var bookmarkModels []*model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bookmarkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookmarks by owner")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkModels))
	for _, bookmarkM := range bookmarkModels {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, nil
}

// FindByIDAndOwner retrieves a single bookmark only if it belongs to ownerID.
func (repo *bookmarkRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id and owner")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// FindByID retrieves a bookmark regardless of owner.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id int64) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// Update modifies an existing bookmark.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Save(bookmarkM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update bookmark")
	}

	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Delete removes a bookmark by its ID.
func (repo *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookmarkModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Link:        data.Link,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel.
func fromBookmarkDomain(bookmark *entity.Bookmark) *model.BookmarkModel {
	if bookmark == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:          bookmark.ID,
		OwnerID:     bookmark.OwnerID,
		Title:       bookmark.Title,
		Link:        bookmark.Link,
		Description: bookmark.Description,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}
