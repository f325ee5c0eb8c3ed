// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"keep/internal/delivery/http/middleware"
	"keep/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	NoteHandler    *handler.NoteHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	noteHandler    *handler.NoteHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		noteHandler:    params.NoteHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, open to the world
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid token
	api.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)

	noteGroup := api.Group("/notes")
	noteGroup.Use(r.authMiddleware.Authenticate)
	{
		noteGroup.POST("", r.noteHandler.Create)
		noteGroup.GET("", r.noteHandler.List)
		noteGroup.GET("/:id", r.noteHandler.Get)
		noteGroup.PUT("/:id", r.noteHandler.Update)
		noteGroup.DELETE("/:id", r.noteHandler.Delete)
	}

	todoGroup := api.Group("/todos")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.POST("", r.todoHandler.Create)
		todoGroup.GET("", r.todoHandler.List)
		todoGroup.GET("/:id", r.todoHandler.Get)
		todoGroup.PUT("/:id", r.todoHandler.Update)
		todoGroup.DELETE("/:id", r.todoHandler.Delete)
	}
}
