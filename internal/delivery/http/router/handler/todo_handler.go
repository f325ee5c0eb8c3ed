package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"keep/internal/delivery/http/middleware"
	"keep/internal/delivery/http/response"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/usecase"
)

// TodoHandler holds dependencies for todo-related handlers.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles todo creation.
func (h *TodoHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input *usecase.CreateTodoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, todo, "Todo created successfully")
}

// List returns all of the caller's todos in schedule order.
func (h *TodoHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	todos, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todos, "")
}

// Get returns a single owned todo.
func (h *TodoHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	todoID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Get(c.Request().Context(), user.ID, todoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "")
}

// Update applies a partial update to an owned todo.
func (h *TodoHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	todoID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateTodoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Update(c.Request().Context(), user.ID, todoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "Todo updated successfully")
}

// Delete removes an owned todo.
func (h *TodoHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	todoID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, todoID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
