// Package router contains routing setup for the HTTP delivery.
package router

import (
	"linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BookmarkHandler *handler.BookmarkHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	bookmarkHandler *handler.BookmarkHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		bookmarkHandler: params.BookmarkHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("/me", r.userHandler.EditMe)
	}

	// Bookmark routes, all owner-scoped behind authentication
	bookmarkGroup := e.Group("/bookmarks")
	bookmarkGroup.Use(r.authMiddleware.Authenticate)
	{
		bookmarkGroup.GET("", r.bookmarkHandler.List)
		bookmarkGroup.POST("", r.bookmarkHandler.Create)
		bookmarkGroup.GET("/:id", r.bookmarkHandler.Get)
		bookmarkGroup.PATCH("/:id", r.bookmarkHandler.Edit)
		bookmarkGroup.DELETE("/:id", r.bookmarkHandler.Delete)
	}
}
