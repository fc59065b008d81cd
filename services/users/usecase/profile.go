package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

// GetUser returns an account by ID
func (uc *UserUC) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateUser updates the account's profile fields. Changing the email does
// not reset verification: the account keeps its verified status.
func (uc *UserUC) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		if !strings.Contains(email, "@") {
			return nil, apperrors.InvalidInputf("email must be a valid email address")
		}
		if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
			return nil, apperrors.InvalidInputf("email is already registered")
		} else if err != nil && !apperrors.IsNotFound(err) {
			return nil, err
		}
		user.Email = email
	}
	user.UpdatedAt = models.Now()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes the account
func (uc *UserUC) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return uc.userRepo.DeleteUser(ctx, userID)
}
