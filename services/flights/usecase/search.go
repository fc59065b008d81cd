package usecase

import (
	"context"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
)

const maxPassengersPerBooking = 10

// SearchFlights validates the criteria and queries the provider, returning
// matches cheapest first
func (uc *FlightUC) SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResult, error) {
	from, err := utils.ValidateIATACode(req.From)
	if err != nil {
		return nil, apperrors.InvalidInputf("origin airport code must be 3 letters")
	}
	to, err := utils.ValidateIATACode(req.To)
	if err != nil {
		return nil, apperrors.InvalidInputf("destination airport code must be 3 letters")
	}
	if from == to {
		return nil, apperrors.InvalidInputf("origin and destination airports must be different")
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.InvalidInputf("flight date must be a Y-M-D date")
	}
	today, _ := models.ParseDate(models.FormatDate(models.Now()))
	if date.Before(today) {
		return nil, apperrors.InvalidInputf("flight date must be today or in the future")
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}
	if passengers < 1 {
		return nil, apperrors.InvalidInputf("at least 1 passenger is required")
	}
	if passengers > maxPassengersPerBooking {
		return nil, apperrors.InvalidInputf("maximum %d passengers allowed per booking", maxPassengersPerBooking)
	}

	criteria := models.FlightSearchRequest{
		From:       from,
		To:         to,
		Date:       req.Date,
		Passengers: passengers,
	}

	matches, err := uc.provider.SearchFlights(ctx, from, to, req.Date, passengers)
	if err != nil {
		return nil, apperrors.Unavailablef("flight provider unavailable: %v", err)
	}

	return &models.FlightSearchResult{
		Flights:         matches,
		SearchCriteria:  criteria,
		TotalCount:      len(matches),
		SearchTimestamp: models.FormatTime(models.Now()),
	}, nil
}

// GetFlight returns provider details for a single flight
func (uc *FlightUC) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	if flightID == "" {
		return nil, apperrors.InvalidInputf("flight ID is required")
	}
	return uc.provider.GetFlightDetails(ctx, flightID)
}

// ListAirports returns the airports known to the provider
func (uc *FlightUC) ListAirports(ctx context.Context) ([]models.Airport, error) {
	airports, err := uc.provider.GetAirports(ctx)
	if err != nil {
		return nil, apperrors.Unavailablef("flight provider unavailable: %v", err)
	}
	return airports, nil
}
