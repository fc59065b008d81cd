package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/flights"
	httpHandler "github.com/greentrip/greentrip/services/flights/handler/http"
)

// Handler combines all handlers for the flights service
type Handler struct {
	flightsHTTP *httpHandler.FlightsHandler
	cfg         *models.Config
	redisClient *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(
	flightUC flights.FlightUseCase,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		flightsHTTP: httpHandler.NewFlightsHandler(flightUC),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all HTTP routes for the flights service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	searchLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Resource:    "search",
		Limit:       h.cfg.RateLimit.SearchPerMinute,
		Period:      time.Minute,
	})

	flightGroup := e.Group("/flights", auth)
	flightGroup.POST("/search", h.flightsHTTP.SearchFlights, searchLimiter)
	flightGroup.POST("/book", h.flightsHTTP.BookFlight)
	flightGroup.GET("/airports", h.flightsHTTP.ListAirports)
	flightGroup.GET("/:flightID", h.flightsHTTP.GetFlight)

	bookingGroup := e.Group("/bookings", auth)
	bookingGroup.GET("", h.flightsHTTP.ListBookings)
	bookingGroup.GET("/:bookingID", h.flightsHTTP.GetBooking)
	bookingGroup.DELETE("/:bookingID", h.flightsHTTP.CancelBooking)
}
