package impl

import (
	"context"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Hand-written test doubles for the domain interfaces used by the services.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockBookmarkRepository struct {
	mock.Mock
}

func (m *mockBookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *mockBookmarkRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if bookmarks, ok := args.Get(0).([]*entity.Bookmark); ok {
		return bookmarks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Bookmark, error) {
	args := m.Called(ctx, id, ownerID)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkRepository) FindByID(ctx context.Context, id int64) (*entity.Bookmark, error) {
	args := m.Called(ctx, id)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *mockBookmarkRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// fakeTxManager runs the transactional function directly against a fixed
// factory, mirroring the commit/rollback contract without a database.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

type fakeRepositoryFactory struct {
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) BookmarkRepo() repository.BookmarkRepository {
	return f.bookmarkRepo
}
