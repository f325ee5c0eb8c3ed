package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
)

// --- Input DTOs ---

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateNoteInput carries a partial update. Nil fields keep their current
// value; fields that are present must still satisfy the creation bounds.
type UpdateNoteInput struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// --- Output DTOs ---

// NoteView is the public shape of a note.
type NoteView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNoteView maps a note entity to its public view.
func NewNoteView(note *entity.Note) *NoteView {
	return &NoteView{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ListNotesOutput wraps a listing with its total count.
type ListNotesOutput struct {
	Notes []*NoteView `json:"notes"`
	Total int         `json:"total"`
}

// NoteUsecase defines the interface for note-related business operations.
// Every operation is scoped to the owner; a note belonging to another user is
// indistinguishable from a missing one.
type NoteUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateNoteInput) (*NoteView, error)
	List(ctx context.Context, ownerID uuid.UUID) (*ListNotesOutput, error)
	Get(ctx context.Context, ownerID, noteID uuid.UUID) (*NoteView, error)
	Update(ctx context.Context, ownerID, noteID uuid.UUID, input *UpdateNoteInput) (*NoteView, error)
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}
