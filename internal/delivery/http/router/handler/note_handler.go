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

// NoteHandler holds dependencies for note-related handlers.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles note creation.
func (h *NoteHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input *usecase.CreateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note, "Note created successfully")
}

// List returns all of the caller's notes.
func (h *NoteHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	output, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get returns a single owned note.
func (h *NoteHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	noteID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Get(c.Request().Context(), user.ID, noteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "")
}

// Update applies a partial update to an owned note.
func (h *NoteHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	noteID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.Update(c.Request().Context(), user.ID, noteID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "Note updated successfully")
}

// Delete removes an owned note.
func (h *NoteHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	noteID, err := idParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, noteID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
