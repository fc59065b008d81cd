package flights

import (
	"context"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// FlightProvider defines the interface for an upstream flight inventory
type FlightProvider interface {
	// SearchFlights returns flights matching from/to with enough seats,
	// cheapest first, stamped with the requested date and total price
	SearchFlights(ctx context.Context, from, to, date string, passengers int) ([]models.Flight, error)

	// GetFlightDetails returns a single flight by provider ID
	GetFlightDetails(ctx context.Context, flightID string) (*models.Flight, error)

	// GetAirports returns all airports known to the provider
	GetAirports(ctx context.Context) ([]models.Airport, error)

	// GetAirport returns a single airport by IATA code
	GetAirport(ctx context.Context, code string) (*models.Airport, error)
}

// BookingRepo defines the interface for booking persistence
type BookingRepo interface {
	// UpsertFlightDetail persists a snapshot of provider flight data,
	// reusing the existing row for the same flight_id and date
	UpsertFlightDetail(ctx context.Context, detail *models.FlightDetail) (*models.FlightDetail, error)

	// CreateBooking persists a new booking
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// GetBookings returns the user's active bookings with flight details,
	// newest first
	GetBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)

	// GetBooking returns one of the user's active bookings with flight
	// details
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error)

	// CancelBooking sets the booking status to cancelled and soft-deletes it
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

// FlightGW defines the interface for publishing booking lifecycle events
type FlightGW interface {
	PublishBookingEvent(ctx context.Context, event models.BookingEvent) error
}

// ReportCacheInvalidator drops a user's cached emissions reports after their
// booking history changes
type ReportCacheInvalidator interface {
	ClearUserCache(ctx context.Context, userID uuid.UUID) error
}
