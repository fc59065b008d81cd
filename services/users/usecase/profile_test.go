package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

func TestUpdateUser_NameOnly(t *testing.T) {
	f := newUserFixture(t)
	user := verifiedUser("ada@example.com", "supersecret")

	f.repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	f.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateUser(context.Background(), user.ID, models.UpdateUserRequest{
		Name: "  Ada Byron  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ada Byron", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestUpdateUser_EmailChangeKeepsVerification(t *testing.T) {
	f := newUserFixture(t)
	user := verifiedUser("ada@example.com", "supersecret")

	f.repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	f.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, apperrors.NotFoundf("user not found"))
	f.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateUser(context.Background(), user.ID, models.UpdateUserRequest{
		Email: "New@Example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.True(t, updated.IsEmailVerified())
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	f := newUserFixture(t)
	user := verifiedUser("ada@example.com", "supersecret")

	f.repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	f.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{ID: uuid.New()}, nil)

	_, err := f.uc.UpdateUser(context.Background(), user.ID, models.UpdateUserRequest{
		Email: "taken@example.com",
	})

	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestUpdateUser_NotFound(t *testing.T) {
	f := newUserFixture(t)
	userID := uuid.New()

	f.repo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.NotFoundf("user not found"))

	_, err := f.uc.UpdateUser(context.Background(), userID, models.UpdateUserRequest{Name: "x"})

	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteUser(t *testing.T) {
	f := newUserFixture(t)
	userID := uuid.New()

	f.repo.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)

	assert.NoError(t, f.uc.DeleteUser(context.Background(), userID))
}
