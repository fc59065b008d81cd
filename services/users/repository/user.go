package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

// UserRepo persists accounts and email verification tokens
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `id, name, email, password_hash, email_verified_at, created_at, updated_at, deleted_at`

// CreateUser persists a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID returns an active account by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND deleted_at IS NULL`, userColumns)

	user := models.User{}
	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail returns an active account by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND deleted_at IS NULL`, userColumns)

	user := models.User{}
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// UpdateUser updates the account's profile fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.UpdatedAt, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRow(result, "user not found")
}

// DeleteUser soft-deletes the account
func (r *UserRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRow(result, "user not found")
}

// MarkEmailVerified stamps the account's email_verified_at
func (r *UserRepo) MarkEmailVerified(ctx context.Context, userID uuid.UUID, verifiedAt time.Time) error {
	query := `
		UPDATE users
		SET email_verified_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, verifiedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return requireRow(result, "user not found")
}

// CreateVerification stores a pending verification token, replacing any
// previous token for the same user
func (r *UserRepo) CreateVerification(ctx context.Context, verification *models.EmailVerification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM email_verifications WHERE user_id = $1`, verification.UserID); err != nil {
		return fmt.Errorf("failed to clear old verification tokens: %w", err)
	}

	query := `
		INSERT INTO email_verifications (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(
		ctx,
		query,
		verification.Token,
		verification.UserID,
		verification.ExpiresAt,
		verification.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert verification token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification token: %w", err)
	}
	return nil
}

// ConsumeVerification atomically looks up and deletes an unexpired
// verification token
func (r *UserRepo) ConsumeVerification(ctx context.Context, token string) (*models.EmailVerification, error) {
	query := `
		DELETE FROM email_verifications
		WHERE token = $1 AND expires_at > NOW()
		RETURNING token, user_id, expires_at, created_at
	`
	verification := models.EmailVerification{}
	err := r.db.GetContext(ctx, &verification, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("invalid or expired verification token")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume verification token: %w", err)
	}
	return &verification, nil
}

func requireRow(result sql.Result, missing string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("%s", missing)
	}
	return nil
}
