package service

import (
	"errors"

	"github.com/google/uuid"
)

// Verification failures are reported as one of these sentinel errors so the
// guard can log the cause distinctly. Callers must treat all three the same
// way: reject the request.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// Claims holds the identity decoded from a verified token. Username is a
// point-in-time copy taken at issuance.
type Claims struct {
	UserID   uuid.UUID
	Username string
}

// TokenService defines the interface for issuing and verifying signed identity
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given user.
	Issue(userID uuid.UUID, username string) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// the decoded claims.
	Verify(tokenString string) (*Claims, error)
}
