package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"keep/internal/delivery/http/response"
	"keep/internal/domain/entity"
	domainerrors "keep/internal/domain/errors"
	"keep/internal/domain/repository"
	"keep/internal/domain/service"
)

// Echo context keys set by the guard for downstream handlers.
const (
	keyPrincipal = "principal"
	keyUserID    = "userID"
)

// AuthMiddleware guards routes that require an authenticated user. Every
// rejection returns the same 401 body; the actual cause only shows up in the
// logs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate validates the bearer token and loads the account it names. The
// principal ends up on the echo context; handlers read it via CurrentUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c, "missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c, "authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c, "token verification failed: "+err.Error())
		}

		// The token may outlive the account. Look the user up on every request
		// so a deleted account loses access immediately.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return m.reject(c, "token subject no longer exists")
			}

			return errors.Wrap(err, "failed to load principal")
		}

		c.Set(keyPrincipal, user)
		c.Set(keyUserID, user.ID)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	m.logger.Info("Request rejected by auth guard",
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	)

	return response.Unauthorized(c,
		domainerrors.ErrUnauthenticated.ErrorCode(),
		domainerrors.ErrUnauthenticated.Message(),
	)
}

// CurrentUser returns the authenticated user placed on the context by
// Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyPrincipal).(*entity.User)

	return user, ok
}

// SetCurrentUser places a user on the context. Exported for handler tests.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(keyPrincipal, user)
}
