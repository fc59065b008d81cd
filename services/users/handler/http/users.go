package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
	"github.com/greentrip/greentrip/services/users"
)

// UsersHandler handles HTTP requests for profile management
type UsersHandler struct {
	userUC users.UserUseCase
}

// NewUsersHandler creates a new users HTTP handler
func NewUsersHandler(userUC users.UserUseCase) *UsersHandler {
	return &UsersHandler{
		userUC: userUC,
	}
}

// GetUser returns a user profile. Users can only read their own profile.
func (h *UsersHandler) GetUser(c echo.Context) error {
	userID, targetID, err := h.ownProfile(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID != targetID {
		return utils.NotFoundResponse(c, "User not found")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), targetID)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to load user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateUser updates the authenticated user's own profile
func (h *UsersHandler) UpdateUser(c echo.Context) error {
	userID, targetID, err := h.ownProfile(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID != targetID {
		return utils.NotFoundResponse(c, "User not found")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), targetID, req)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to update user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser soft-deletes the authenticated user's own account
func (h *UsersHandler) DeleteUser(c echo.Context) error {
	userID, targetID, err := h.ownProfile(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID != targetID {
		return utils.NotFoundResponse(c, "User not found")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), targetID); err != nil {
		return utils.MapErrorResponse(c, err, "Failed to delete user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UsersHandler) ownProfile(c echo.Context) (userID, targetID uuid.UUID, err error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.ErrUnauthorized
	}
	targetID, err = uuid.Parse(c.Param("userID"))
	if err != nil {
		// fall back to the authenticated user for /users/me style access
		targetID = userID
		err = nil
	}
	return userID, targetID, err
}
