package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

// verificationTTL is how long a verification token stays valid
const verificationTTL = 48 * time.Hour

// VerifyEmail consumes a verification token and marks the account verified.
// Tokens are single use; expired or unknown tokens report not found.
func (uc *UserUC) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.InvalidInputf("verification token is required")
	}

	verification, err := uc.userRepo.ConsumeVerification(ctx, token)
	if err != nil {
		return nil, err
	}

	verifiedAt := models.Now()
	if err := uc.userRepo.MarkEmailVerified(ctx, verification.UserID, verifiedAt); err != nil {
		return nil, err
	}

	return uc.userRepo.GetUserByID(ctx, verification.UserID)
}

// ResendVerification queues a fresh verification email for an unverified
// account, replacing any previous token
func (uc *UserUC) ResendVerification(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.IsEmailVerified() {
		return apperrors.InvalidInputf("email is already verified")
	}
	return uc.queueVerificationEmail(ctx, user)
}

func (uc *UserUC) queueVerificationEmail(ctx context.Context, user *models.User) error {
	token, err := generateVerificationToken()
	if err != nil {
		return err
	}

	now := models.Now()
	verification := &models.EmailVerification{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(verificationTTL),
		CreatedAt: now,
	}
	if err := uc.userRepo.CreateVerification(ctx, verification); err != nil {
		return err
	}

	return uc.userGW.PublishVerificationEmail(ctx, models.VerificationEmailEvent{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		VerifyURL: fmt.Sprintf("%s/verify-email/%s", uc.cfg.App.BaseURL, token),
		Timestamp: now,
	})
}

func generateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
