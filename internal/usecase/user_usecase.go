// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"keep/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The password ceiling matches bcrypt, which refuses inputs over 72 bytes.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput defines the data required to log in. Bounds mirror registration;
// anything outside them can never match a stored credential.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// --- Output DTOs ---

// UserView is the public shape of a user. The password hash never leaves the
// service layer.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView maps a user entity to its public view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// AuthOutput returns the signed token together with the authenticated user.
// Both Register and Login produce this shape.
type AuthOutput struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error)
}
