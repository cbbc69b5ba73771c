package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkvault/config"
	"linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router/handler"
	"linkvault/internal/delivery/http/validator"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/infra/auth"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SignupOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SigninOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) EditMe(ctx context.Context, userID int64, input *usecase.EditUserInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockBookmarkUsecase struct {
	mock.Mock
}

func (m *mockBookmarkUsecase) List(ctx context.Context, ownerID int64) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if bookmarks, ok := args.Get(0).([]*entity.Bookmark); ok {
		return bookmarks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) GetByID(ctx context.Context, ownerID, bookmarkID int64) (*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID, bookmarkID)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) Create(ctx context.Context, ownerID int64, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID, input)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) Edit(ctx context.Context, ownerID, bookmarkID int64, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID, bookmarkID, input)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) Delete(ctx context.Context, ownerID, bookmarkID int64) error {
	args := m.Called(ctx, ownerID, bookmarkID)

	return args.Error(0)
}

type testServer struct {
	echo       *echo.Echo
	authUC     *mockAuthUsecase
	bookmarkUC *mockBookmarkUsecase
	token      string
}

const testUserID int64 = 42

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.Issue(testUserID, "test@example.com")
	require.NoError(t, err)

	authUC := new(mockAuthUsecase)
	bookmarkUC := new(mockBookmarkUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{AuthUC: authUC, Logger: logger}),
		BookmarkHandler: handler.NewBookmarkHandler(handler.BookmarkHandlerParams{BookmarkUC: bookmarkUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return &testServer{
		echo:       e,
		authUC:     authUC,
		bookmarkUC: bookmarkUC,
		token:      token,
	}
}

func (s *testServer) request(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Signup_Created(t *testing.T) {
	srv := newTestServer(t)

	srv.authUC.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.SignupOutput{
			AccessToken: "issued.jwt.token",
			User:        &entity.User{ID: 1, Email: "new@example.com"},
		}, nil)

	rec := srv.request(http.MethodPost, "/auth/signup",
		`{"email":"new@example.com","password":"Password123!"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"issued.jwt.token"`)
}

func TestRouter_Signup_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	srv.authUC.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("signup failed"))

	rec := srv.request(http.MethodPost, "/auth/signup",
		`{"email":"taken@example.com","password":"Password123!"}`, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"EMAIL_TAKEN"`)
}

func TestRouter_Signup_InvalidEmailRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodPost, "/auth/signup",
		`{"email":"not-an-email","password":"Password123!"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
	srv.authUC.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestRouter_Signin_InvalidCredentials(t *testing.T) {
	srv := newTestServer(t)

	srv.authUC.On("Signin", mock.Anything, mock.AnythingOfType("*usecase.SigninInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed"))

	rec := srv.request(http.MethodPost, "/auth/signin",
		`{"email":"test@example.com","password":"WrongPassword!"}`, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_CREDENTIALS"`)
	// The response must not reveal whether the email exists.
	assert.NotContains(t, rec.Body.String(), "email")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouter_Bookmarks_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/bookmarks", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
	srv.bookmarkUC.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRouter_Bookmarks_GarbageTokenRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/bookmarks", "", "not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Auth failures use the same stable code in the unified envelope.
	assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRouter_CreateBookmark_OwnerFromToken(t *testing.T) {
	srv := newTestServer(t)

	srv.bookmarkUC.On("Create", mock.Anything, testUserID, mock.AnythingOfType("*usecase.CreateBookmarkInput")).
		Return(&entity.Bookmark{ID: 10, OwnerID: testUserID, Title: "docs", Link: "https://pkg.go.dev"}, nil)

	rec := srv.request(http.MethodPost, "/bookmarks",
		`{"title":"docs","link":"https://pkg.go.dev"}`, srv.token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_id":42`)
}

func TestRouter_GetBookmark_MissIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	srv.bookmarkUC.On("GetByID", mock.Anything, testUserID, int64(404)).
		Return(nil, domainerrors.ErrBookmarkNotFound.WrapMessage("get bookmark failed"))

	rec := srv.request(http.MethodGet, "/bookmarks/404", "", srv.token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"BOOKMARK_NOT_FOUND"`)
}

func TestRouter_EditForeignBookmark_Forbidden(t *testing.T) {
	srv := newTestServer(t)

	srv.bookmarkUC.On("Edit", mock.Anything, testUserID, int64(5), mock.AnythingOfType("*usecase.EditBookmarkInput")).
		Return(nil, domainerrors.ErrForbidden)

	rec := srv.request(http.MethodPatch, "/bookmarks/5",
		`{"title":"hijacked"}`, srv.token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"FORBIDDEN"`)
}

func TestRouter_DeleteBookmark_NoContent(t *testing.T) {
	srv := newTestServer(t)

	srv.bookmarkUC.On("Delete", mock.Anything, testUserID, int64(5)).Return(nil)

	rec := srv.request(http.MethodDelete, "/bookmarks/5", "", srv.token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_DeleteBookmark_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodDelete, "/bookmarks/abc", "", srv.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
	// A rejected id must short-circuit the handler entirely: the usecase is
	// never invoked, not even with a zero id.
	srv.bookmarkUC.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_GetBookmark_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodGet, "/bookmarks/0", "", srv.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
	srv.bookmarkUC.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_EditMe_UpdatesProfile(t *testing.T) {
	srv := newTestServer(t)

	srv.authUC.On("EditMe", mock.Anything, testUserID, mock.AnythingOfType("*usecase.EditUserInput")).
		Return(&entity.User{
			ID:           testUserID,
			Email:        "renamed@example.com",
			FirstName:    "Renamed",
			PasswordHash: "$2a$10$secrethashvalue",
		}, nil)

	rec := srv.request(http.MethodPatch, "/users/me",
		`{"email":"renamed@example.com","first_name":"Renamed"}`, srv.token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"renamed@example.com"`)
	assert.NotContains(t, rec.Body.String(), "secrethashvalue")
}

func TestRouter_EditMe_InvalidEmailRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(http.MethodPatch, "/users/me",
		`{"email":"not-an-email"}`, srv.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
	srv.authUC.AssertNotCalled(t, "EditMe", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_GetMe_NeverExposesHash(t *testing.T) {
	srv := newTestServer(t)

	srv.authUC.On("GetMe", mock.Anything, testUserID).
		Return(&entity.User{
			ID:           testUserID,
			Email:        "test@example.com",
			PasswordHash: "$2a$10$secrethashvalue",
		}, nil)

	rec := srv.request(http.MethodGet, "/users/me", "", srv.token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"test@example.com"`)
	assert.NotContains(t, rec.Body.String(), "secrethashvalue")
}
