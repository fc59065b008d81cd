package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
)

// BookFlight books a flight for the user. The booking's emissions are
// computed from the route's great-circle distance and persisted with the
// booking, then the user's cached emission reports are invalidated and a
// booking event is published.
func (uc *FlightUC) BookFlight(ctx context.Context, userID uuid.UUID, req models.BookFlightRequest) (*models.BookingConfirmation, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	flight, err := uc.provider.GetFlightDetails(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.SeatsAvailable < req.Passengers {
		return nil, apperrors.InvalidInputf("insufficient seats available for this flight")
	}

	class := strings.ToLower(strings.TrimSpace(req.Class))
	if class == "" {
		class = "economy"
	}

	origin, err := uc.provider.GetAirport(ctx, flight.From)
	if err != nil {
		return nil, err
	}
	destination, err := uc.provider.GetAirport(ctx, flight.To)
	if err != nil {
		return nil, err
	}

	distance := utils.CalculateDistance(
		utils.GeoPoint{Latitude: origin.Latitude, Longitude: origin.Longitude},
		utils.GeoPoint{Latitude: destination.Latitude, Longitude: destination.Longitude},
	)
	emissions, err := uc.calc.CalculateEmissions(distance, class, req.Passengers)
	if err != nil {
		return nil, err
	}

	detail, err := uc.bookingRepo.UpsertFlightDetail(ctx, flightDetailFromFlight(flight, req.Date))
	if err != nil {
		return nil, err
	}

	now := models.Now()
	booking := &models.Booking{
		ID:              uuid.New(),
		UserID:          userID,
		FlightDetailsID: detail.ID,
		Emissions:       emissions,
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.invalidateReports(ctx, userID)
	uc.publishBookingEvent(ctx, booking, flight.ID)

	confirmedFlight := *flight
	confirmedFlight.Date = req.Date
	confirmedFlight.TotalPrice = flight.Price * float64(req.Passengers)

	return &models.BookingConfirmation{
		BookingID:        booking.ID,
		BookingReference: generateBookingReference(),
		FlightID:         flight.ID,
		FlightDetails:    confirmedFlight,
		Passengers:       req.Passengers,
		TotalPrice:       confirmedFlight.TotalPrice,
		PassengerDetails: req.PassengerDetails,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		BookingDate:      models.FormatTime(now),
		Status:           booking.Status,
		DistanceKm:       utils.Round2(distance),
		EmissionsKg:      emissions,
	}, nil
}

// ListBookings returns the user's active bookings
func (uc *FlightUC) ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return uc.bookingRepo.GetBookings(ctx, userID)
}

// GetBooking returns one of the user's active bookings
func (uc *FlightUC) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, userID, bookingID)
}

// CancelBooking marks the booking cancelled and soft-deletes it. Emissions
// stay on record, so only the cached reports need invalidating.
func (uc *FlightUC) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	if err := uc.bookingRepo.CancelBooking(ctx, userID, bookingID); err != nil {
		return err
	}

	uc.invalidateReports(ctx, userID)
	uc.publishBookingEvent(ctx, &models.Booking{
		ID:        booking.ID,
		UserID:    booking.UserID,
		Emissions: booking.Emissions,
		Status:    models.BookingStatusCancelled,
	}, flightIDOf(booking))

	return nil
}

func validateBookingRequest(req models.BookFlightRequest) error {
	if req.FlightID == "" {
		return apperrors.InvalidInputf("flight ID is required")
	}
	if req.Passengers < 1 {
		return apperrors.InvalidInputf("at least 1 passenger is required")
	}
	if req.Passengers > maxPassengersPerBooking {
		return apperrors.InvalidInputf("maximum %d passengers allowed per booking", maxPassengersPerBooking)
	}
	if len(req.PassengerDetails) == 0 {
		return apperrors.InvalidInputf("at least one passenger must be specified")
	}
	if len(req.PassengerDetails) != req.Passengers {
		return apperrors.InvalidInputf("number of passengers must match the number of passenger details provided")
	}
	for _, passenger := range req.PassengerDetails {
		if passenger.FirstName == "" || passenger.LastName == "" {
			return apperrors.InvalidInputf("first and last name are required for all passengers")
		}
		if passenger.PassportNumber == "" {
			return apperrors.InvalidInputf("passport number is required for all passengers")
		}
		if _, err := models.ParseDate(passenger.DateOfBirth); err != nil {
			return apperrors.InvalidInputf("date of birth must be a Y-M-D date for all passengers")
		}
	}
	if !strings.Contains(req.ContactEmail, "@") {
		return apperrors.InvalidInputf("contact email must be a valid email address")
	}
	if req.Date != "" {
		if _, err := models.ParseDate(req.Date); err != nil {
			return apperrors.InvalidInputf("flight date must be a Y-M-D date")
		}
	}
	return nil
}

func flightDetailFromFlight(flight *models.Flight, date string) *models.FlightDetail {
	return &models.FlightDetail{
		ID:              uuid.New(),
		FlightID:        flight.ID,
		Airline:         flight.Airline,
		FlightNumber:    flight.FlightNumber,
		From:            flight.From,
		To:              flight.To,
		DepartureTime:   flight.DepartureTime,
		ArrivalTime:     flight.ArrivalTime,
		Duration:        flight.Duration,
		Price:           flight.Price,
		SeatsAvailable:  flight.SeatsAvailable,
		Aircraft:        flight.Aircraft,
		CarbonFootprint: flight.CarbonFootprint,
		EcoRating:       flight.EcoRating,
		Date:            date,
		CreatedAt:       models.Now(),
	}
}

// generateBookingReference returns a GT-prefixed reference with 8 hex chars
func generateBookingReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "GT" + strings.ToUpper(raw[:8])
}

func (uc *FlightUC) invalidateReports(ctx context.Context, userID uuid.UUID) {
	if err := uc.reportCache.ClearUserCache(ctx, userID); err != nil {
		logger.Warn("failed to clear emission report cache after booking change",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

func (uc *FlightUC) publishBookingEvent(ctx context.Context, booking *models.Booking, flightID string) {
	event := models.BookingEvent{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		FlightID:  flightID,
		Status:    booking.Status,
		Emissions: booking.Emissions,
		Timestamp: models.Now(),
	}
	if err := uc.flightGW.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("failed to publish booking event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}
}

func flightIDOf(booking *models.Booking) string {
	if booking.FlightDetail != nil {
		return booking.FlightDetail.FlightID
	}
	return ""
}
