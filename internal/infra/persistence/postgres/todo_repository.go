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

// todoRepository implements the domain TodoRepository interface using GORM.
// Ownership is enforced the same way as for notes.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// Create persists a new todo and writes back the database-assigned fields.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := model.FromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("todo owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// ListByOwner returns all todos owned by ownerID. Scheduled todos come first
// in ascending schedule order, unscheduled ones sort last, ties broken by
// newest creation time.
func (repo *todoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	var todoMs []model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("scheduled_for ASC NULLS LAST, created_at DESC").
		Find(&todoMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos by owner")
	}

	todos := make([]*entity.Todo, 0, len(todoMs))
	for i := range todoMs {
		todos = append(todos, todoMs[i].ToDomain())
	}

	return todos, nil
}

// FindByID retrieves a single todo matching both id and ownerID.
func (repo *todoRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return todoM.ToDomain(), nil
}

// Update applies the non-nil changes and refreshes updated_at in a single
// UPDATE ... RETURNING statement. Zero affected rows means the owned todo does
// not exist.
func (repo *todoRepository) Update(ctx context.Context, ownerID, id uuid.UUID, changes repository.TodoChanges) (*entity.Todo, error) {
	updates := map[string]any{
		"updated_at": gorm.Expr("NOW()"),
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Completed != nil {
		updates["completed"] = *changes.Completed
	}
	if changes.ScheduledFor != nil {
		updates["scheduled_for"] = *changes.ScheduledFor
	}

	var todoM model.TodoModel
	result := repo.db.WithContext(ctx).
		Model(&todoM).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTodoNotFound
	}

	return todoM.ToDomain(), nil
}

// Delete removes the owned todo and reports whether a row was removed.
func (repo *todoRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TodoModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete todo")
	}

	return result.RowsAffected > 0, nil
}
