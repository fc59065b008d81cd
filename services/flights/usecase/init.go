package usecase

import (
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions/calculator"
	"github.com/greentrip/greentrip/services/flights"
)

// FlightUC implements the flight use case interface
type FlightUC struct {
	cfg         *models.Config
	provider    flights.FlightProvider
	bookingRepo flights.BookingRepo
	flightGW    flights.FlightGW
	calc        *calculator.Calculator
	reportCache flights.ReportCacheInvalidator
}

// NewFlightUC creates a new flight use case
func NewFlightUC(
	cfg *models.Config,
	provider flights.FlightProvider,
	bookingRepo flights.BookingRepo,
	flightGW flights.FlightGW,
	calc *calculator.Calculator,
	reportCache flights.ReportCacheInvalidator,
) *FlightUC {
	return &FlightUC{
		cfg:         cfg,
		provider:    provider,
		bookingRepo: bookingRepo,
		flightGW:    flightGW,
		calc:        calc,
		reportCache: reportCache,
	}
}
