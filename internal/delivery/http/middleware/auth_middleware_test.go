package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keep/internal/domain/entity"
	"keep/internal/domain/repository"
	"keep/internal/domain/service"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) Issue(userID uuid.UUID, username string) (string, error) {
	return "token", nil
}

func (s *stubTokenService) Verify(tokenString string) (*service.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.claims, nil
}

type stubUserRepo struct {
	user *entity.User
	err  error
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	return nil
}

func runGuard(t *testing.T, authHeader string, tokenSvc service.TokenService, userRepo repository.UserRepository) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guard := NewAuthMiddleware(tokenSvc, userRepo, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := guard.Authenticate(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	tokenSvc := &stubTokenService{claims: &service.Claims{UserID: user.ID, Username: "alice"}}

	rec, reached := runGuard(t, "Bearer good-token", tokenSvc, &stubUserRepo{user: user})

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, reached := runGuard(t, "", &stubTokenService{}, &stubUserRepo{})

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	rec, reached := runGuard(t, "Basic dXNlcjpwYXNz", &stubTokenService{}, &stubUserRepo{})

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_VerificationFailures(t *testing.T) {
	// Expired, forged and malformed tokens all produce the same 401.
	for _, verifyErr := range []error{
		service.ErrTokenExpired,
		service.ErrTokenSignatureInvalid,
		service.ErrTokenMalformed,
	} {
		rec, reached := runGuard(t, "Bearer bad-token", &stubTokenService{err: verifyErr}, &stubUserRepo{})

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticate_DeletedPrincipal(t *testing.T) {
	tokenSvc := &stubTokenService{claims: &service.Claims{UserID: uuid.New(), Username: "ghost"}}
	userRepo := &stubUserRepo{err: repository.ErrUserNotFound}

	rec, reached := runGuard(t, "Bearer orphan-token", tokenSvc, userRepo)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUser_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Username: "alice"}
	SetCurrentUser(c, user)

	got, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, user, got)
}
