package repository

import (
	"context"
	"errors"

	"keep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when no note matches both the ID and the owner.
// An existing note owned by someone else yields the same error.
var ErrNoteNotFound = errors.New("note not found")

// NoteChanges carries a partial update. Nil fields leave the stored value
// unchanged.
type NoteChanges struct {
	Title   *string
	Content *string
}

// NoteRepository defines the persistence operations for notes. Every operation
// except Create takes the owner's ID and applies it as a filter inside the
// same statement as the note ID.
type NoteRepository interface {
	// Create persists a new note and writes the generated ID and timestamps
	// back into the entity.
	Create(ctx context.Context, note *entity.Note) error

	// ListByOwner returns all notes owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error)

	// FindByID retrieves a single note matching both id and ownerID.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Note, error)

	// Update applies the non-nil fields of changes and refreshes updated_at
	// in one statement. Returns ErrNoteNotFound when no owned row matches.
	Update(ctx context.Context, ownerID, id uuid.UUID, changes NoteChanges) (*entity.Note, error)

	// Delete removes the owned note and reports whether a row was removed.
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}
