// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal of the system. A user owns notes and
// todos; every resource query is scoped by the owning user's ID.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The unique login identifier chosen at registration.
	PasswordHash string    // The bcrypt hash of the password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
