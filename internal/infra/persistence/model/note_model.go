package model

import (
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
)

// NoteModel mirrors the 'notes' table.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *NoteModel) ToDomain() *entity.Note {
	return &entity.Note{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromNoteDomain maps a domain entity to its persistence model.
func FromNoteDomain(note *entity.Note) *NoteModel {
	return &NoteModel{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
