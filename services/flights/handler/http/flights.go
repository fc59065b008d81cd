package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
	"github.com/greentrip/greentrip/services/flights"
)

// FlightsHandler handles HTTP requests for flight and booking operations
type FlightsHandler struct {
	flightUC flights.FlightUseCase
}

// NewFlightsHandler creates a new flights HTTP handler
func NewFlightsHandler(flightUC flights.FlightUseCase) *FlightsHandler {
	return &FlightsHandler{
		flightUC: flightUC,
	}
}

// SearchFlights handles flight search requests
func (h *FlightsHandler) SearchFlights(c echo.Context) error {
	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.flightUC.SearchFlights(c.Request().Context(), req)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to search flights")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Flights retrieved successfully", result)
}

// BookFlight handles booking requests for the authenticated user
func (h *FlightsHandler) BookFlight(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookFlightRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	confirmation, err := h.flightUC.BookFlight(c.Request().Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to book flight",
			logger.String("user_id", userID.String()),
			logger.String("flight_id", req.FlightID),
			logger.ErrorField(err))
		return utils.MapErrorResponse(c, err, "Failed to book flight")
	}

	logger.Info("Flight booked",
		logger.String("user_id", userID.String()),
		logger.String("flight_id", req.FlightID),
		logger.String("booking_id", confirmation.BookingID.String()),
		logger.Float64("emissions_kg", confirmation.EmissionsKg))

	return utils.SuccessResponse(c, http.StatusCreated, "Flight booked successfully", confirmation)
}

// GetFlight handles single flight detail requests
func (h *FlightsHandler) GetFlight(c echo.Context) error {
	flightID := c.Param("flightID")

	flight, err := h.flightUC.GetFlight(c.Request().Context(), flightID)
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to retrieve flight")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Flight retrieved successfully", flight)
}

// ListAirports handles airport listing requests
func (h *FlightsHandler) ListAirports(c echo.Context) error {
	airports, err := h.flightUC.ListAirports(c.Request().Context())
	if err != nil {
		return utils.MapErrorResponse(c, err, "Failed to retrieve airports")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Airports retrieved successfully", airports)
}

// ListBookings handles booking list requests for the authenticated user
func (h *FlightsHandler) ListBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.flightUC.ListBookings(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
		return utils.MapErrorResponse(c, err, "An error occurred while retrieving bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBooking handles single booking requests for the authenticated user
func (h *FlightsHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	booking, err := h.flightUC.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return utils.MapErrorResponse(c, err, "An error occurred while retrieving the booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// CancelBooking handles booking cancellation for the authenticated user
func (h *FlightsHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	if err := h.flightUC.CancelBooking(c.Request().Context(), userID, bookingID); err != nil {
		logger.Warn("Failed to cancel booking",
			logger.String("user_id", userID.String()),
			logger.String("booking_id", bookingID.String()),
			logger.ErrorField(err))
		return utils.MapErrorResponse(c, err, "An error occurred while cancelling the booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", nil)
}
