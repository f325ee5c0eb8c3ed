package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "keep/internal/domain/errors"
)

// idParam parses a UUID path parameter. A malformed value is a 400, distinct
// from the 404 a well-formed but unknown ID produces.
func idParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " is not a valid UUID")
	}

	return id, nil
}
