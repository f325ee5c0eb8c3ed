package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-text record owned by exactly one user.
type Note struct {
	ID        uuid.UUID // The unique identifier for the note.
	UserID    uuid.UUID // Links the note to the user who owns it.
	Title     string    // Short heading, required.
	Content   string    // Free-text body, required.
	CreatedAt time.Time
	UpdatedAt time.Time // Refreshed on every successful mutation.
}
