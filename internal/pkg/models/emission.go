package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PeriodGranularity is the time bucket used to group bookings in reports
type PeriodGranularity string

const (
	PeriodDaily   PeriodGranularity = "daily"
	PeriodWeekly  PeriodGranularity = "weekly"
	PeriodMonthly PeriodGranularity = "monthly"
	PeriodYearly  PeriodGranularity = "yearly"
)

// PeriodGranularities lists the canonical period granularities in fixed order
var PeriodGranularities = []PeriodGranularity{
	PeriodDaily,
	PeriodWeekly,
	PeriodMonthly,
	PeriodYearly,
}

// ParsePeriodGranularity validates a period string. Empty input defaults to
// monthly
func ParsePeriodGranularity(s string) (PeriodGranularity, error) {
	if s == "" {
		return PeriodMonthly, nil
	}
	switch PeriodGranularity(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return PeriodGranularity(s), nil
	}
	return "", fmt.Errorf("invalid period %q: must be one of daily, weekly, monthly, yearly", s)
}

// DateRange bounds a report to bookings created within [Start, End] inclusive
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingEmissionEntry is a read-only projection of a booking used by the
// emissions reporting pipeline. Soft-deleted bookings are included: the
// emissions were produced regardless of later cancellation
type BookingEmissionEntry struct {
	BookingID  uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Emissions  float64   `db:"emissions"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	FlightFrom string    `db:"origin"`
	FlightTo   string    `db:"destination"`
	Airline    string    `db:"airline"`
	FlightDate string    `db:"date"`
}

// FlightRoute is the display-only route info echoed per booking in reports
type FlightRoute struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Airline string `json:"airline"`
	Date    string `json:"date"`
}

// BookingEmissionDetail is the per-booking projection inside a period summary
type BookingEmissionDetail struct {
	ID        uuid.UUID   `json:"id"`
	Emissions float64     `json:"emissions"`
	Status    string      `json:"status"`
	Flight    FlightRoute `json:"flight"`
	CreatedAt string      `json:"created_at"`
}

// PeriodSummary aggregates a user's bookings within one calendar period
type PeriodSummary struct {
	Period           string                  `json:"period"`
	TotalEmissions   float64                 `json:"total_emissions"`
	BookingCount     int                     `json:"booking_count"`
	AverageEmissions float64                 `json:"average_emissions_per_booking"`
	Bookings         []BookingEmissionDetail `json:"bookings,omitempty"`
}

// UserEmissionsSummary is the full emissions report for a user.
// GeneratedAt records when the summary was computed; a cache hit returns the
// original computation time untouched
type UserEmissionsSummary struct {
	UserID         uuid.UUID         `json:"user_id"`
	UserName       string            `json:"user_name"`
	PeriodType     PeriodGranularity `json:"period_type"`
	DateRange      *DateRange        `json:"date_range,omitempty"`
	TotalEmissions float64           `json:"total_emissions"`
	TotalBookings  int               `json:"total_bookings"`
	Periods        []PeriodSummary   `json:"periods"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// CalculateEmissionsRequest is the payload for route emission estimates
type CalculateEmissionsRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Class      string `json:"class"`
	Passengers int    `json:"passengers"`
}

// EmissionEstimate is the result of a route emission calculation
type EmissionEstimate struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Class       string  `json:"class"`
	Passengers  int     `json:"passengers"`
	DistanceKm  float64 `json:"distance_km"`
	EmissionsKg float64 `json:"emissions_kg"`
}
