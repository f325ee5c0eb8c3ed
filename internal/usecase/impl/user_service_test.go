package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/usecase"
)

func newUserServiceForTest(userRepo *fakeUserRepo) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       &fakeHasher{},
		TokenService: &fakeTokenService{},
		Logger:       discardLogger(),
	})
}

func TestUserService_Register(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
	assert.NotEqual(t, uuid.Nil, out.User.ID)

	stored, err := userRepo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	// The stored credential must be the hash, never the plaintext.
	assert.Equal(t, "hashed:secret123", stored.PasswordHash)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "other456"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Equal(t, 1, userRepo.createCall)
}

func TestUserService_Login(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	reg, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	// Unknown username and wrong password must produce the same error.
	_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	_, wrongErr := svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	reg, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	view, err := svc.GetProfile(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       &fakeHasher{hashErr: assert.AnError},
		TokenService: &fakeTokenService{},
		Logger:       discardLogger(),
	})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Equal(t, 0, userRepo.createCall)
}

func TestUserService_Login_MalformedStoredHash(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newUserServiceForTest(userRepo)

	corrupted := &entity.User{ID: uuid.New(), Username: "mallory", PasswordHash: "not-a-hash"}
	require.NoError(t, userRepo.Create(context.Background(), corrupted))

	// A row with an unusable hash still reads as bad credentials.
	_, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "mallory", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
