package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "keep/internal/domain/errors"
	"keep/internal/usecase"
)

func strPtr(s string) *string { return &s }

func newNoteServiceForTest(noteRepo *fakeNoteRepo) usecase.NoteUsecase {
	return NewNoteService(NoteServiceParams{
		NoteRepo: noteRepo,
		Logger:   discardLogger(),
	})
}

func TestNoteService_CreateAndGet(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{
		Title:   "groceries",
		Content: "milk, eggs",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "groceries", got.Title)
	assert.Equal(t, "milk, eggs", got.Content)
}

func TestNoteService_Get_OtherOwnerLooksMissing(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_List(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())
	owner := uuid.New()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{Title: title, Content: "c"})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), uuid.New(), &usecase.CreateNoteInput{Title: "other", Content: "c"})
	require.NoError(t, err)

	out, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Len(t, out.Notes, 3)
}

func TestNoteService_List_Empty(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())

	out, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Notes)
}

func TestNoteService_Update_Partial(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{Title: "before", Content: "body"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, created.ID, &usecase.UpdateNoteInput{
		Title: strPtr("after"),
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	// Untouched field keeps its value.
	assert.Equal(t, "body", updated.Content)
}

func TestNoteService_Update_NotFound(t *testing.T) {
	svc := newNoteServiceForTest(newFakeNoteRepo())

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateNoteInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	noteRepo := newFakeNoteRepo()
	svc := newNoteServiceForTest(noteRepo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))

	// Second delete of the same note reports not found.
	err = svc.Delete(context.Background(), owner, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_Delete_OtherOwner(t *testing.T) {
	noteRepo := newFakeNoteRepo()
	svc := newNoteServiceForTest(noteRepo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &usecase.CreateNoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)

	// The note survives the foreign delete attempt.
	_, err = svc.Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
}
