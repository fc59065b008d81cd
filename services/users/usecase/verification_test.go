package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

func TestVerifyEmail_Success(t *testing.T) {
	f := newUserFixture(t)
	userID := uuid.New()
	verifiedAt := time.Now().UTC()

	f.repo.EXPECT().
		ConsumeVerification(gomock.Any(), "abc123").
		Return(&models.EmailVerification{Token: "abc123", UserID: userID}, nil)
	f.repo.EXPECT().
		MarkEmailVerified(gomock.Any(), userID, gomock.Any()).
		Return(nil)
	f.repo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "ada@example.com", EmailVerifiedAt: &verifiedAt}, nil)

	user, err := f.uc.VerifyEmail(context.Background(), "abc123")

	assert.NoError(t, err)
	assert.True(t, user.IsEmailVerified())
}

func TestVerifyEmail_EmptyToken(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.uc.VerifyEmail(context.Background(), "")

	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	f := newUserFixture(t)

	f.repo.EXPECT().
		ConsumeVerification(gomock.Any(), "expired").
		Return(nil, apperrors.NotFoundf("invalid or expired verification token"))

	_, err := f.uc.VerifyEmail(context.Background(), "expired")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestResendVerification_Success(t *testing.T) {
	f := newUserFixture(t)
	user := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

	f.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ada@example.com").
		Return(user, nil)
	f.repo.EXPECT().
		CreateVerification(gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().
		PublishVerificationEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.VerificationEmailEvent) error {
			assert.Equal(t, user.ID, event.UserID)
			assert.NotEmpty(t, event.Token)
			assert.Contains(t, event.VerifyURL, event.Token)
			return nil
		})

	err := f.uc.ResendVerification(context.Background(), "Ada@Example.com")

	assert.NoError(t, err)
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	f := newUserFixture(t)
	user := verifiedUser("ada@example.com", "supersecret")

	f.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ada@example.com").
		Return(user, nil)

	err := f.uc.ResendVerification(context.Background(), "ada@example.com")

	assert.True(t, apperrors.IsInvalidInput(err))
}
