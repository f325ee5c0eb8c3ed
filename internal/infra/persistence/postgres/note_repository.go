package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/domain/repository"
	"keep/internal/infra/persistence/model"
)

// noteRepository implements the domain NoteRepository interface using GORM.
// Ownership is enforced in SQL: the owner's ID rides in the WHERE clause of
// every statement, so a foreign note behaves exactly like a missing one.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note and writes back the database-assigned fields.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := model.FromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("note owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// ListByOwner returns all notes owned by ownerID, newest first.
func (repo *noteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	var noteMs []model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&noteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes by owner")
	}

	notes := make([]*entity.Note, 0, len(noteMs))
	for i := range noteMs {
		notes = append(notes, noteMs[i].ToDomain())
	}

	return notes, nil
}

// FindByID retrieves a single note matching both id and ownerID.
func (repo *noteRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&noteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return noteM.ToDomain(), nil
}

// Update applies the non-nil changes and refreshes updated_at in a single
// UPDATE ... RETURNING statement. Zero affected rows means the owned note does
// not exist.
func (repo *noteRepository) Update(ctx context.Context, ownerID, id uuid.UUID, changes repository.NoteChanges) (*entity.Note, error) {
	updates := map[string]any{
		"updated_at": gorm.Expr("NOW()"),
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Content != nil {
		updates["content"] = *changes.Content
	}

	var noteM model.NoteModel
	result := repo.db.WithContext(ctx).
		Model(&noteM).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNoteNotFound
	}

	return noteM.ToDomain(), nil
}

// Delete removes the owned note and reports whether a row was removed.
func (repo *noteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete note")
	}

	return result.RowsAffected > 0, nil
}
