package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/users"
	httpHandler "github.com/greentrip/greentrip/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	authHTTP    *httpHandler.AuthHandler
	usersHTTP   *httpHandler.UsersHandler
	cfg         *models.Config
	redisClient *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(
	userUC users.UserUseCase,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		authHTTP:    httpHandler.NewAuthHandler(userUC),
		usersHTTP:   httpHandler.NewUsersHandler(userUC),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all HTTP routes for the users service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	authLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Resource:    "auth",
		Limit:       h.cfg.RateLimit.AuthPerMinute,
		Period:      time.Minute,
	})

	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHTTP.Register, authLimiter)
	authGroup.POST("/login", h.authHTTP.Login, authLimiter)
	authGroup.POST("/logout", h.authHTTP.Logout, auth)
	authGroup.POST("/refresh", h.authHTTP.Refresh, auth)
	authGroup.GET("/me", h.authHTTP.Me, auth)

	e.GET("/verify-email/:token", h.authHTTP.VerifyEmail)
	e.POST("/resend-verification", h.authHTTP.ResendVerification, authLimiter)

	userGroup := e.Group("/users", auth)
	userGroup.GET("/profile", h.usersHTTP.GetUser)
	userGroup.GET("/:userID", h.usersHTTP.GetUser)
	userGroup.PUT("/:userID", h.usersHTTP.UpdateUser)
	userGroup.DELETE("/:userID", h.usersHTTP.DeleteUser)
}
