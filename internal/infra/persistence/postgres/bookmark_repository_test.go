package postgres

import (
	"context"
	"testing"
	"time"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookmarkRows() *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows([]string{"id", "owner_id", "title", "link", "description", "created_at", "updated_at"}).
		AddRow(int64(5), int64(42), "docs", "https://pkg.go.dev", "", now, now)
}

func TestBookmarkRepository_Create_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectQuery(`INSERT INTO "bookmarks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	bookmark := &entity.Bookmark{
		OwnerID: 42,
		Title:   "docs",
		Link:    "https://pkg.go.dev",
	}

	err := repo.Create(context.Background(), bookmark)

	require.NoError(t, err)
	assert.Equal(t, int64(5), bookmark.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_FindByOwner_ScopedQuery(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE owner_id = \$1 ORDER BY created_at DESC`).
		WithArgs(int64(42)).
		WillReturnRows(bookmarkRows())

	bookmarks, err := repo.FindByOwner(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, int64(42), bookmarks[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_FindByIDAndOwner_MissRegardlessOfReason(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBookmarkRepository(db)

	// Whether the row does not exist or belongs to someone else, the scoped
	// query comes back empty and the caller sees the same not-found.
	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(int64(5), int64(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bookmark, err := repo.FindByIDAndOwner(context.Background(), 5, 99)

	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.ErrorIs(t, err, repository.ErrBookmarkNotFound)
}

func TestBookmarkRepository_Delete_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectExec(`DELETE FROM "bookmarks" WHERE`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_Delete_NoRows(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBookmarkRepository(db)

	mock.ExpectExec(`DELETE FROM "bookmarks" WHERE`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrBookmarkNotFound)
}
