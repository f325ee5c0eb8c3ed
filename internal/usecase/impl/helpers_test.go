package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
	"keep/internal/domain/repository"
	"keep/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory repositories ---

type fakeUserRepo struct {
	byID       map[uuid.UUID]*entity.User
	createErr  error
	findErr    error
	createCall int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if user, ok := r.byID[id]; ok {
		copied := *user
		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.byID {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.createCall++
	if r.createErr != nil {
		return r.createErr
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.byID[user.ID] = &copied

	return nil
}

type fakeNoteRepo struct {
	byID      map[uuid.UUID]*entity.Note
	createErr error
	listErr   error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byID: make(map[uuid.UUID]*entity.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	if r.createErr != nil {
		return r.createErr
	}

	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	copied := *note
	r.byID[note.ID] = &copied

	return nil
}

func (r *fakeNoteRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var notes []*entity.Note
	for _, note := range r.byID {
		if note.UserID == ownerID {
			copied := *note
			notes = append(notes, &copied)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })

	return notes, nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Note, error) {
	note, ok := r.byID[id]
	if !ok || note.UserID != ownerID {
		return nil, repository.ErrNoteNotFound
	}
	copied := *note

	return &copied, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, ownerID, id uuid.UUID, changes repository.NoteChanges) (*entity.Note, error) {
	note, ok := r.byID[id]
	if !ok || note.UserID != ownerID {
		return nil, repository.ErrNoteNotFound
	}

	if changes.Title != nil {
		note.Title = *changes.Title
	}
	if changes.Content != nil {
		note.Content = *changes.Content
	}
	note.UpdatedAt = time.Now()
	copied := *note

	return &copied, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	note, ok := r.byID[id]
	if !ok || note.UserID != ownerID {
		return false, nil
	}
	delete(r.byID, id)

	return true, nil
}

type fakeTodoRepo struct {
	byID      map[uuid.UUID]*entity.Todo
	createErr error
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{byID: make(map[uuid.UUID]*entity.Todo)}
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	if r.createErr != nil {
		return r.createErr
	}

	todo.CreatedAt = time.Now()
	todo.UpdatedAt = todo.CreatedAt
	copied := *todo
	r.byID[todo.ID] = &copied

	return nil
}

func (r *fakeTodoRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for _, todo := range r.byID {
		if todo.UserID == ownerID {
			copied := *todo
			todos = append(todos, &copied)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		switch {
		case a.ScheduledFor != nil && b.ScheduledFor != nil:
			if !a.ScheduledFor.Equal(*b.ScheduledFor) {
				return a.ScheduledFor.Before(*b.ScheduledFor)
			}
		case a.ScheduledFor != nil:
			return true
		case b.ScheduledFor != nil:
			return false
		}

		return a.CreatedAt.After(b.CreatedAt)
	})

	return todos, nil
}

func (r *fakeTodoRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Todo, error) {
	todo, ok := r.byID[id]
	if !ok || todo.UserID != ownerID {
		return nil, repository.ErrTodoNotFound
	}
	copied := *todo

	return &copied, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, ownerID, id uuid.UUID, changes repository.TodoChanges) (*entity.Todo, error) {
	todo, ok := r.byID[id]
	if !ok || todo.UserID != ownerID {
		return nil, repository.ErrTodoNotFound
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.Completed != nil {
		todo.Completed = *changes.Completed
	}
	if changes.ScheduledFor != nil {
		todo.ScheduledFor = changes.ScheduledFor
	}
	todo.UpdatedAt = time.Now()
	copied := *todo

	return &copied, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	todo, ok := r.byID[id]
	if !ok || todo.UserID != ownerID {
		return false, nil
	}
	delete(r.byID, id)

	return true, nil
}

// --- transaction plumbing ---

type fakeRepoFactory struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	todoRepo repository.TodoRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) NoteRepo() repository.NoteRepository { return f.noteRepo }
func (f *fakeRepoFactory) TodoRepo() repository.TodoRepository { return f.todoRepo }

// fakeTxManager runs the callback directly against the in-memory repos.
type fakeTxManager struct {
	factory    *fakeRepoFactory
	executeErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.executeErr != nil {
		return m.executeErr
	}

	return fn(m.factory)
}

// --- auth services ---

// fakeHasher marks hashes with a prefix so tests can assert plaintext never
// reaches the repository.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID, username string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(tokenString string) (*service.Claims, error) {
	return nil, service.ErrTokenMalformed
}
