package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a task record owned by exactly one user. ScheduledFor is optional;
// unscheduled todos sort after scheduled ones when listed.
type Todo struct {
	ID           uuid.UUID // The unique identifier for the todo.
	UserID       uuid.UUID // Links the todo to the user who owns it.
	Title        string    // Short heading, required.
	Description  string    // Optional free-text detail.
	Completed    bool      // Completion flag, defaults to false on creation.
	ScheduledFor *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time // Refreshed on every successful mutation.
}
