package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// BookingHistoryRepo reads booking emission history for the reporting
// pipeline. Queries deliberately skip the deleted_at filter: cancelled and
// soft-deleted bookings still count toward the user's footprint.
type BookingHistoryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingHistoryRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingHistoryRepo {
	return &BookingHistoryRepo{
		cfg: cfg,
		db:  db,
	}
}

const emissionEntryColumns = `
	b.id, b.user_id, b.emissions, b.status, b.created_at,
	fd.origin, fd.destination, fd.airline, fd.date
`

// GetEmissionEntries returns all of the user's booking emission entries,
// newest first
func (r *BookingHistoryRepo) GetEmissionEntries(ctx context.Context, userID uuid.UUID) ([]models.BookingEmissionEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN flight_details fd ON fd.id = b.flight_details_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, emissionEntryColumns)

	entries := []models.BookingEmissionEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query booking emissions: %w", err)
	}
	return entries, nil
}

// GetEmissionEntriesInRange returns the user's booking emission entries
// created within the inclusive date range, newest first
func (r *BookingHistoryRepo) GetEmissionEntriesInRange(ctx context.Context, userID uuid.UUID, dateRange models.DateRange) ([]models.BookingEmissionEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN flight_details fd ON fd.id = b.flight_details_id
		WHERE b.user_id = $1
		  AND b.created_at >= $2
		  AND b.created_at < $3
		ORDER BY b.created_at DESC
	`, emissionEntryColumns)

	// End is inclusive as a calendar date, so the upper bound is the start
	// of the following day
	upperBound := dateRange.End.AddDate(0, 0, 1)

	entries := []models.BookingEmissionEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, dateRange.Start, upperBound); err != nil {
		return nil, fmt.Errorf("failed to query booking emissions: %w", err)
	}
	return entries, nil
}
