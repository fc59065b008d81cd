package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// UserRepo defines the interface for account persistence
type UserRepo interface {
	// CreateUser persists a new account
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID returns an active account by ID
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// GetUserByEmail returns an active account by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUser updates the account's profile fields
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser soft-deletes the account
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// MarkEmailVerified stamps the account's email_verified_at
	MarkEmailVerified(ctx context.Context, userID uuid.UUID, verifiedAt time.Time) error

	// CreateVerification stores a pending verification token, replacing any
	// previous token for the same user
	CreateVerification(ctx context.Context, verification *models.EmailVerification) error

	// ConsumeVerification atomically looks up and deletes an unexpired
	// verification token
	ConsumeVerification(ctx context.Context, token string) (*models.EmailVerification, error)
}

// UserGW defines the interface for queueing verification emails
type UserGW interface {
	PublishVerificationEmail(ctx context.Context, event models.VerificationEmailEvent) error
}
