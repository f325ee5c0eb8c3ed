package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTodoInput defines the data required to create a todo item. Completed
// defaults to false when omitted.
type CreateTodoInput struct {
	Title        string     `json:"title" validate:"required,min=1,max=255"`
	Description  string     `json:"description" validate:"max=1000"`
	Completed    bool       `json:"completed"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// UpdateTodoInput carries a partial update. Nil fields keep their current
// value. A scheduled time cannot be cleared through this path, only moved.
type UpdateTodoInput struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string    `json:"description" validate:"omitempty,max=1000"`
	Completed    *bool      `json:"completed"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// --- Output DTOs ---

// TodoView is the public shape of a todo item.
type TodoView struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewTodoView maps a todo entity to its public view.
func NewTodoView(todo *entity.Todo) *TodoView {
	return &TodoView{
		ID:           todo.ID,
		Title:        todo.Title,
		Description:  todo.Description,
		Completed:    todo.Completed,
		ScheduledFor: todo.ScheduledFor,
		CreatedAt:    todo.CreatedAt,
		UpdatedAt:    todo.UpdatedAt,
	}
}

// TodoUsecase defines the interface for todo-related business operations.
// Like notes, every operation is scoped to the owner.
type TodoUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTodoInput) (*TodoView, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*TodoView, error)
	Get(ctx context.Context, ownerID, todoID uuid.UUID) (*TodoView, error)
	Update(ctx context.Context, ownerID, todoID uuid.UUID, input *UpdateTodoInput) (*TodoView, error)
	Delete(ctx context.Context, ownerID, todoID uuid.UUID) error
}
