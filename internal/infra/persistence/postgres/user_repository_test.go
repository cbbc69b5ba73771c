package postgres

import (
	"context"
	"testing"
	"time"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(
		gormpg.New(gormpg.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func userRows() *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}).
		AddRow(int64(1), "test@example.com", "stored_hash", "Test", "User", now, now)
}

func TestUserRepository_Create_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	user := &entity.User{
		Email:        "test@example.com",
		PasswordHash: "stored_hash",
	}

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

	user := &entity.User{
		Email:        "taken@example.com",
		PasswordHash: "stored_hash",
	}

	err := repo.Create(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("test@example.com", 1).
		WillReturnRows(userRows())

	user, err := repo.FindByEmail(context.Background(), "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "stored_hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Update_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{
		ID:           1,
		Email:        "renamed@example.com",
		PasswordHash: "stored_hash",
	}

	err := repo.Update(context.Background(), user)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

	user := &entity.User{
		ID:           1,
		Email:        "taken@example.com",
		PasswordHash: "stored_hash",
	}

	err := repo.Update(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_MissingRow(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	user := &entity.User{
		ID:           404,
		Email:        "gone@example.com",
		PasswordHash: "stored_hash",
	}

	err := repo.Update(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByID(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
