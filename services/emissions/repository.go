package emissions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// BookingHistoryRepo defines the interface for reading booking emission
// history. Soft-deleted bookings are included: they still count toward the
// user's footprint.
type BookingHistoryRepo interface {
	// GetEmissionEntries returns all of the user's booking emission entries
	// ordered by creation time, newest first
	GetEmissionEntries(ctx context.Context, userID uuid.UUID) ([]models.BookingEmissionEntry, error)

	// GetEmissionEntriesInRange returns the user's booking emission entries
	// created within the inclusive date range, newest first
	GetEmissionEntriesInRange(ctx context.Context, userID uuid.UUID, dateRange models.DateRange) ([]models.BookingEmissionEntry, error)
}

// CacheStore defines the interface for the report cache
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// AirportResolver defines the interface for resolving IATA codes to
// airport records
type AirportResolver interface {
	GetAirport(ctx context.Context, code string) (*models.Airport, error)
}

// UserProvider defines the interface for loading the user a summary is
// generated for
type UserProvider interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
