package handler

import (
	"log/slog"
	"net/http"
	"time"

	"linkvault/internal/delivery/http/response"
	"linkvault/internal/domain/entity"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// UserResponse is the public view of an account. The stored credential hash
// has no field here, so it cannot leak through serialization.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// GetMe handles the request for the authenticated principal's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// EditMe handles a partial update of the authenticated principal's account.
func (h *UserHandler) EditMe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var input usecase.EditUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.EditMe(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
