package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions"
	httpHandler "github.com/greentrip/greentrip/services/emissions/handler/http"
)

// Handler combines all handlers for the emissions service
type Handler struct {
	emissionsHTTP *httpHandler.EmissionsHandler
	cfg           *models.Config
	redisClient   *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(
	emissionsUC emissions.EmissionsUseCase,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		emissionsHTTP: httpHandler.NewEmissionsHandler(emissionsUC),
		cfg:           cfg,
		redisClient:   redisClient,
	}
}

// RegisterRoutes registers all HTTP routes for the emissions service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Resource:    "emissions",
		Limit:       h.cfg.RateLimit.EmissionsPerMinute,
		Period:      time.Minute,
	})

	group := e.Group("/emissions",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		rateLimiter,
	)

	group.POST("/calculate", h.emissionsHTTP.CalculateEmissions)
	group.GET("/summary", h.emissionsHTTP.GetEmissionsSummary)
	group.DELETE("/cache", h.emissionsHTTP.ClearEmissionsCache)
}
