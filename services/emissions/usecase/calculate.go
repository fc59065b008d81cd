package usecase

import (
	"context"
	"strings"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
)

// CalculateRouteEmissions resolves both airports, measures the great-circle
// distance between them and returns the one-way emission estimate
func (uc *EmissionsUC) CalculateRouteEmissions(ctx context.Context, req models.CalculateEmissionsRequest) (*models.EmissionEstimate, error) {
	from, err := utils.ValidateIATACode(req.From)
	if err != nil {
		return nil, apperrors.InvalidInputf("invalid origin airport code: %s", req.From)
	}
	to, err := utils.ValidateIATACode(req.To)
	if err != nil {
		return nil, apperrors.InvalidInputf("invalid destination airport code: %s", req.To)
	}
	if from == to {
		return nil, apperrors.InvalidInputf("origin and destination airports must differ")
	}

	origin, err := uc.airportRepo.GetAirport(ctx, from)
	if err != nil {
		return nil, err
	}
	destination, err := uc.airportRepo.GetAirport(ctx, to)
	if err != nil {
		return nil, err
	}

	distance := utils.CalculateDistance(
		utils.GeoPoint{Latitude: origin.Latitude, Longitude: origin.Longitude},
		utils.GeoPoint{Latitude: destination.Latitude, Longitude: destination.Longitude},
	)

	class := strings.ToLower(strings.TrimSpace(req.Class))
	if class == "" {
		class = "economy"
	}
	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}

	emissions, err := uc.calc.CalculateEmissions(distance, class, passengers)
	if err != nil {
		return nil, err
	}

	return &models.EmissionEstimate{
		From:        from,
		To:          to,
		Class:       class,
		Passengers:  passengers,
		DistanceKm:  utils.Round2(distance),
		EmissionsKg: emissions,
	}, nil
}
