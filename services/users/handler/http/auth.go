package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
	"github.com/greentrip/greentrip/services/users"
)

// AuthHandler handles HTTP requests for registration and authentication
type AuthHandler struct {
	userUC users.UserUseCase
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(userUC users.UserUseCase) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to register user")
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()))

	return utils.SuccessResponse(c, http.StatusCreated,
		"Registration successful. Please check your email to verify your account.", user)
}

// Login handles credential authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to load profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// Refresh issues a fresh token for the authenticated user
func (h *AuthHandler) Refresh(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	auth, err := h.userUC.RefreshToken(c.Request().Context(), userID)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to refresh token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", auth)
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Successfully logged out", nil)
}

// VerifyEmail consumes a verification token from the link in the email
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")

	user, err := h.userUC.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to verify email")
	}

	logger.Info("Email verified",
		logger.String("user_id", user.ID.String()))

	return utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", user)
}

// ResendVerification queues a fresh verification email
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return utils.MapErrorResponse(c, err, "Failed to send verification email")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification email sent successfully", nil)
}
