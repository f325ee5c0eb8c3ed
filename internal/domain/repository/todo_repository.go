package repository

import (
	"context"
	"errors"
	"time"

	"keep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when no todo matches both the ID and the owner.
// An existing todo owned by someone else yields the same error.
var ErrTodoNotFound = errors.New("todo not found")

// TodoChanges carries a partial update. Nil fields leave the stored value
// unchanged; a non-nil ScheduledFor replaces the stored schedule.
type TodoChanges struct {
	Title        *string
	Description  *string
	Completed    *bool
	ScheduledFor *time.Time
}

// TodoRepository defines the persistence operations for todos. Every operation
// except Create takes the owner's ID and applies it as a filter inside the
// same statement as the todo ID.
type TodoRepository interface {
	// Create persists a new todo and writes the generated ID and timestamps
	// back into the entity.
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByOwner returns all todos owned by ownerID: scheduled todos first in
	// ascending schedule order, then unscheduled ones, ties broken by newest
	// creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)

	// FindByID retrieves a single todo matching both id and ownerID.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Todo, error)

	// Update applies the non-nil fields of changes and refreshes updated_at
	// in one statement. Returns ErrTodoNotFound when no owned row matches.
	Update(ctx context.Context, ownerID, id uuid.UUID, changes TodoChanges) (*entity.Todo, error)

	// Delete removes the owned todo and reports whether a row was removed.
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}
