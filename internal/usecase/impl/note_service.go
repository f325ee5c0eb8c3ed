package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "keep/internal/delivery/context"
	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/domain/repository"
	"keep/internal/usecase"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new note for the owner.
func (srv *noteService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateNoteInput) (*usecase.NoteView, error) {
	note := &entity.Note{
		ID:      uuid.New(),
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to create note", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Any("noteID", note.ID), slog.Any("ownerID", ownerID))

	return usecase.NewNoteView(note), nil
}

// List returns all of the owner's notes, newest first, with the total count.
func (srv *noteService) List(ctx context.Context, ownerID uuid.UUID) (*usecase.ListNotesOutput, error) {
	notes, err := srv.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	views := make([]*usecase.NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, usecase.NewNoteView(note))
	}

	return &usecase.ListNotesOutput{
		Notes: views,
		Total: len(views),
	}, nil
}

// Get returns a single owned note.
func (srv *noteService) Get(ctx context.Context, ownerID, noteID uuid.UUID) (*usecase.NoteView, error) {
	note, err := srv.noteRepo.FindByID(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return usecase.NewNoteView(note), nil
}

// Update applies a partial update to an owned note. An update with no fields
// set still refreshes updated_at, matching the single-statement semantics of
// the repository.
func (srv *noteService) Update(ctx context.Context, ownerID, noteID uuid.UUID, input *usecase.UpdateNoteInput) (*usecase.NoteView, error) {
	changes := repository.NoteChanges{
		Title:   input.Title,
		Content: input.Content,
	}

	note, err := srv.noteRepo.Update(ctx, ownerID, noteID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		srv.log(ctx).Error("Failed to update note", slog.Any("noteID", noteID), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update note")
	}

	return usecase.NewNoteView(note), nil
}

// Delete removes an owned note.
func (srv *noteService) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	deleted, err := srv.noteRepo.Delete(ctx, ownerID, noteID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete note", slog.Any("noteID", noteID), slog.Any("ownerID", ownerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete note")
	}
	if !deleted {
		return domainerrors.ErrNoteNotFound
	}

	srv.log(ctx).Debug("Note deleted", slog.Any("noteID", noteID), slog.Any("ownerID", ownerID))

	return nil
}
