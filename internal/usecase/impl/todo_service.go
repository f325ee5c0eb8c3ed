package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "keep/internal/delivery/context"
	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/domain/repository"
	"keep/internal/usecase"
)

// todoService implements the TodoUsecase interface.
type todoService struct {
	todoRepo repository.TodoRepository
	logger   *slog.Logger

	// now is swappable in tests so the past-schedule check is deterministic.
	now func() time.Time
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkSchedule rejects schedule times that already passed. Unscheduled todos
// pass through untouched.
func (srv *todoService) checkSchedule(scheduledFor *time.Time) error {
	if scheduledFor != nil && scheduledFor.Before(srv.now()) {
		return domainerrors.ErrScheduleInPast
	}

	return nil
}

// Create persists a new todo for the owner.
func (srv *todoService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTodoInput) (*usecase.TodoView, error) {
	if err := srv.checkSchedule(input.ScheduledFor); err != nil {
		return nil, err
	}

	todo := &entity.Todo{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        input.Title,
		Description:  input.Description,
		Completed:    input.Completed,
		ScheduledFor: input.ScheduledFor,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Any("todoID", todo.ID), slog.Any("ownerID", ownerID))

	return usecase.NewTodoView(todo), nil
}

// List returns all of the owner's todos: scheduled ones first in ascending
// schedule order, then unscheduled ones, newest first.
func (srv *todoService) List(ctx context.Context, ownerID uuid.UUID) ([]*usecase.TodoView, error) {
	todos, err := srv.todoRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	views := make([]*usecase.TodoView, 0, len(todos))
	for _, todo := range todos {
		views = append(views, usecase.NewTodoView(todo))
	}

	return views, nil
}

// Get returns a single owned todo.
func (srv *todoService) Get(ctx context.Context, ownerID, todoID uuid.UUID) (*usecase.TodoView, error) {
	todo, err := srv.todoRepo.FindByID(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return usecase.NewTodoView(todo), nil
}

// Update applies a partial update to an owned todo. A new schedule time is
// validated against the clock the same way as on creation.
func (srv *todoService) Update(ctx context.Context, ownerID, todoID uuid.UUID, input *usecase.UpdateTodoInput) (*usecase.TodoView, error) {
	if err := srv.checkSchedule(input.ScheduledFor); err != nil {
		return nil, err
	}

	changes := repository.TodoChanges{
		Title:        input.Title,
		Description:  input.Description,
		Completed:    input.Completed,
		ScheduledFor: input.ScheduledFor,
	}

	todo, err := srv.todoRepo.Update(ctx, ownerID, todoID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound
		}

		srv.log(ctx).Error("Failed to update todo", slog.Any("todoID", todoID), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update todo")
	}

	return usecase.NewTodoView(todo), nil
}

// Delete removes an owned todo.
func (srv *todoService) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	deleted, err := srv.todoRepo.Delete(ctx, ownerID, todoID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete todo", slog.Any("todoID", todoID), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete todo")
	}
	if !deleted {
		return domainerrors.ErrTodoNotFound
	}

	srv.log(ctx).Debug("Todo deleted", slog.Any("todoID", todoID), slog.Any("ownerID", ownerID))

	return nil
}
