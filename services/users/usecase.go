package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// UserUseCase defines the interface for account and authentication use cases
type UserUseCase interface {
	// Register creates an account with a hashed password and queues a
	// verification email
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)

	// Login authenticates credentials and issues a JWT. Unverified accounts
	// are rejected.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// RefreshToken issues a fresh JWT for the authenticated user
	RefreshToken(ctx context.Context, userID uuid.UUID) (*models.AuthResponse, error)

	// GetUser returns an account by ID
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// UpdateUser updates the account's profile fields
	UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (*models.User, error)

	// DeleteUser soft-deletes the account
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// VerifyEmail consumes a verification token and marks the account
	// verified
	VerifyEmail(ctx context.Context, token string) (*models.User, error)

	// ResendVerification queues a fresh verification email for an
	// unverified account
	ResendVerification(ctx context.Context, email string) error
}
