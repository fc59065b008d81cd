package flights

import (
	"context"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// FlightUseCase defines the interface for flight search and booking use cases
type FlightUseCase interface {
	// SearchFlights returns available flights matching the criteria,
	// cheapest first
	SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResult, error)

	// GetFlight returns provider details for a single flight
	GetFlight(ctx context.Context, flightID string) (*models.Flight, error)

	// ListAirports returns the airports known to the provider
	ListAirports(ctx context.Context) ([]models.Airport, error)

	// BookFlight books a flight for the user, computing and persisting the
	// booking's emissions as part of the same operation
	BookFlight(ctx context.Context, userID uuid.UUID, req models.BookFlightRequest) (*models.BookingConfirmation, error)

	// ListBookings returns the user's active bookings
	ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)

	// GetBooking returns one of the user's active bookings
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error)

	// CancelBooking marks a booking cancelled and soft-deletes it. The
	// booking's emissions keep counting toward the user's footprint.
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}
