package model

import (
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
)

// TodoModel mirrors the 'todos' table. ScheduledFor is nullable; unscheduled
// todos store NULL.
type TodoModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_todos_user_schedule,priority:1"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:varchar(1000);not null;default:''"`
	Completed    bool       `gorm:"not null;default:false"`
	ScheduledFor *time.Time `gorm:"index:idx_todos_user_schedule,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *TodoModel) ToDomain() *entity.Todo {
	return &entity.Todo{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		Completed:    m.Completed,
		ScheduledFor: m.ScheduledFor,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromTodoDomain maps a domain entity to its persistence model.
func FromTodoDomain(todo *entity.Todo) *TodoModel {
	return &TodoModel{
		ID:           todo.ID,
		UserID:       todo.UserID,
		Title:        todo.Title,
		Description:  todo.Description,
		Completed:    todo.Completed,
		ScheduledFor: todo.ScheduledFor,
		CreatedAt:    todo.CreatedAt,
		UpdatedAt:    todo.UpdatedAt,
	}
}
