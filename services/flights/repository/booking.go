package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

// BookingRepo persists bookings and flight detail snapshots
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertFlightDetail persists a provider flight snapshot. Bookings of the
// same flight on the same date share one row.
func (r *BookingRepo) UpsertFlightDetail(ctx context.Context, detail *models.FlightDetail) (*models.FlightDetail, error) {
	existing := models.FlightDetail{}
	query := `
		SELECT id, flight_id, airline, flight_number, origin, destination,
		       departure_time, arrival_time, duration, price, seats_available,
		       aircraft, carbon_footprint, eco_rating, date, created_at
		FROM flight_details
		WHERE flight_id = $1 AND date = $2
	`
	err := r.db.GetContext(ctx, &existing, query, detail.FlightID, detail.Date)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query flight details: %w", err)
	}

	insert := `
		INSERT INTO flight_details (
			id, flight_id, airline, flight_number, origin, destination,
			departure_time, arrival_time, duration, price, seats_available,
			aircraft, carbon_footprint, eco_rating, date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.db.ExecContext(
		ctx,
		insert,
		detail.ID,
		detail.FlightID,
		detail.Airline,
		detail.FlightNumber,
		detail.From,
		detail.To,
		detail.DepartureTime,
		detail.ArrivalTime,
		detail.Duration,
		detail.Price,
		detail.SeatsAvailable,
		detail.Aircraft,
		detail.CarbonFootprint,
		detail.EcoRating,
		detail.Date,
		detail.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert flight details: %w", err)
	}
	return detail, nil
}

// CreateBooking persists a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, flight_details_id, emissions, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.UserID,
		booking.FlightDetailsID,
		booking.Emissions,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBookings returns the user's active bookings with flight details,
// newest first
func (r *BookingRepo) GetBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, flight_details_id, emissions, status,
		       created_at, updated_at, deleted_at
		FROM bookings
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	for i := range bookings {
		detail, err := r.getFlightDetail(ctx, bookings[i].FlightDetailsID)
		if err != nil {
			return nil, err
		}
		bookings[i].FlightDetail = detail
	}
	return bookings, nil
}

// GetBooking returns one of the user's active bookings with flight details
func (r *BookingRepo) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, user_id, flight_details_id, emissions, status,
		       created_at, updated_at, deleted_at
		FROM bookings
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	booking := models.Booking{}
	err := r.db.GetContext(ctx, &booking, query, bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}

	detail, err := r.getFlightDetail(ctx, booking.FlightDetailsID)
	if err != nil {
		return nil, err
	}
	booking.FlightDetail = detail
	return &booking, nil
}

// CancelBooking sets the booking status to cancelled and soft-deletes it
func (r *BookingRepo) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $1, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, models.BookingStatusCancelled, bookingID, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read cancel result: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("booking not found")
	}
	return nil
}

func (r *BookingRepo) getFlightDetail(ctx context.Context, detailID uuid.UUID) (*models.FlightDetail, error) {
	query := `
		SELECT id, flight_id, airline, flight_number, origin, destination,
		       departure_time, arrival_time, duration, price, seats_available,
		       aircraft, carbon_footprint, eco_rating, date, created_at
		FROM flight_details
		WHERE id = $1
	`
	detail := models.FlightDetail{}
	err := r.db.GetContext(ctx, &detail, query, detailID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query flight details: %w", err)
	}
	return &detail, nil
}
