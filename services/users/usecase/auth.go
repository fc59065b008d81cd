package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/jwt"
	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

const minPasswordLength = 8

// Register creates an account with a bcrypt-hashed password and queues a
// verification email. The account cannot log in until the email is verified.
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" {
		return nil, apperrors.InvalidInputf("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperrors.InvalidInputf("email must be a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.InvalidInputf("password must be at least %d characters", minPasswordLength)
	}

	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.InvalidInputf("email is already registered")
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.queueVerificationEmail(ctx, user); err != nil {
		logger.Warn("failed to queue verification email",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return user, nil
}

// Login authenticates credentials and issues a JWT. Accounts that have not
// completed email verification are rejected.
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.InvalidInputf("email and password are required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorizedf("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorizedf("invalid email or password")
	}

	if !user.IsEmailVerified() {
		return nil, apperrors.Unauthorizedf("please verify your email address before logging in")
	}

	return uc.issueToken(user)
}

// RefreshToken issues a fresh JWT for the authenticated user
func (uc *UserUC) RefreshToken(ctx context.Context, userID uuid.UUID) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
