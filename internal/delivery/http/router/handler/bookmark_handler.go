package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/response"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookmarkHandlerParams holds dependencies for BookmarkHandler, injected by Fx.
type BookmarkHandlerParams struct {
	fx.In

	BookmarkUC usecase.BookmarkUsecase
	Logger     *slog.Logger
}

// BookmarkHandler holds dependencies for bookmark-related handlers.
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
	logger     *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler.
func NewBookmarkHandler(params BookmarkHandlerParams) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUC: params.BookmarkUC,
		logger:     params.Logger,
	}
}

// BookmarkResponse is the public view of a bookmark.
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookmarkResponse(bookmark *entity.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          bookmark.ID,
		OwnerID:     bookmark.OwnerID,
		Title:       bookmark.Title,
		Link:        bookmark.Link,
		Description: bookmark.Description,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}

func toBookmarkResponses(bookmarks []*entity.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		out = append(out, toBookmarkResponse(bookmark))
	}

	return out
}

// List handles retrieving all bookmarks of the authenticated principal.
func (h *BookmarkHandler) List(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.bookmarkUC.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponses(bookmarks), "Bookmarks retrieved successfully")
}

// Get handles retrieving a single bookmark by id.
func (h *BookmarkHandler) Get(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	bookmark, err := h.bookmarkUC.GetByID(c.Request().Context(), ownerID, bookmarkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark retrieved successfully")
}

// Create handles creating a new bookmark for the authenticated principal.
func (h *BookmarkHandler) Create(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateBookmarkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.bookmarkUC.Create(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark), "Bookmark created successfully")
}

// Edit handles partially updating a bookmark.
func (h *BookmarkHandler) Edit(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.EditBookmarkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.bookmarkUC.Edit(c.Request().Context(), ownerID, bookmarkID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark updated successfully")
}

// Delete handles removing a bookmark.
func (h *BookmarkHandler) Delete(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkUC.Delete(c.Request().Context(), ownerID, bookmarkID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// getUserID extracts the authenticated principal's id from the context.
// It returns an error value and never writes the response itself, so callers
// can bail out with `return err` and let the error handler shape the body.
func getUserID(c echo.Context) (int64, error) {
	userIDVal := c.Get(middleware.ContextUserIDKey)
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0, domainerrors.ErrInvalidToken.WithDetails("missing authenticated principal")
	}

	return userID, nil
}

// parseIDParam parses the :id path parameter. Like getUserID it only returns
// an error, it never commits a response.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}
