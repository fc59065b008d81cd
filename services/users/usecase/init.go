package usecase

import (
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/users"
)

// UserUC implements the user use case interface
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	userGW   users.UserGW
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	userGW users.UserGW,
) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
		userGW:   userGW,
	}
}
