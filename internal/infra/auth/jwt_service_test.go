package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keep/config"
	"keep/internal/domain/service"
)

func newTestJWTService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	other := &config.Config{}
	other.SecretKey.Token = "another-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_VerifyRejectsWrongAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	// A token signed with "none" must never pass, even with a valid payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":      uuid.New().String(),
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_VerifyRejectsBadSubject(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "not-a-uuid",
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}
