// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "keep/internal/delivery/context"
	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/domain/repository"
	"keep/internal/domain/service"
	"keep/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs the first token for it. The
// username check and the insert run inside one transaction; the unique index
// on username remains the final arbiter under concurrent registration.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		newUser := &entity.User{
			ID:           uuid.New(),
			Username:     input.Username,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		created = newUser

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.Issue(created.ID, created.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", created.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", created.ID))

	return &usecase.AuthOutput{
		Token: token,
		User:  usecase.NewUserView(created),
	}, nil
}

// Login verifies the credentials and signs a fresh token. An unknown username
// and a wrong password both map to the same error so the response never
// reveals which part was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		if !strings.HasPrefix(user.PasswordHash, "$2") {
			// A stored hash that is not bcrypt means a corrupted row, not a
			// wrong password. The caller still only sees invalid credentials.
			srv.log(ctx).Error("Stored password hash is malformed", slog.Any("userID", user.ID))
		} else {
			srv.log(ctx).Info("Login attempt with wrong password", slog.Any("userID", user.ID))
		}

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token on login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}

// GetProfile returns the public view of an account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserView(user), nil
}
