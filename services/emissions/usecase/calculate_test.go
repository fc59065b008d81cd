package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions/calculator"
	"github.com/greentrip/greentrip/services/emissions/mocks"
)

type calculateFixture struct {
	uc       *EmissionsUC
	airports *mocks.MockAirportResolver
}

func newCalculateFixture(t *testing.T) *calculateFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	airports := mocks.NewMockAirportResolver(ctrl)
	cfg := &models.Config{
		Emissions: models.EmissionsConfig{ReportCacheTTLSeconds: 120},
	}

	uc := NewEmissionsUC(
		cfg,
		calculator.New(),
		mocks.NewMockBookingHistoryRepo(ctrl),
		mocks.NewMockUserProvider(ctrl),
		airports,
		mocks.NewMockCacheStore(ctrl),
	)
	return &calculateFixture{uc: uc, airports: airports}
}

func jfkAirport() *models.Airport {
	return &models.Airport{Code: "JFK", Latitude: 40.6413, Longitude: -73.7781}
}

func laxAirport() *models.Airport {
	return &models.Airport{Code: "LAX", Latitude: 33.9416, Longitude: -118.4085}
}

func TestCalculateRouteEmissions_Success(t *testing.T) {
	f := newCalculateFixture(t)

	f.airports.EXPECT().GetAirport(gomock.Any(), "JFK").Return(jfkAirport(), nil)
	f.airports.EXPECT().GetAirport(gomock.Any(), "LAX").Return(laxAirport(), nil)

	estimate, err := f.uc.CalculateRouteEmissions(context.Background(), models.CalculateEmissionsRequest{
		From:       "jfk",
		To:         "lax",
		Class:      "economy",
		Passengers: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "JFK", estimate.From)
	assert.Equal(t, "LAX", estimate.To)
	// JFK to LAX is roughly 3974 km transcontinental, long haul rate applies
	assert.InDelta(t, 3974.0, estimate.DistanceKm, 20.0)
	assert.InDelta(t, estimate.DistanceKm*0.180, estimate.EmissionsKg, 0.5)
}

func TestCalculateRouteEmissions_DefaultsClassAndPassengers(t *testing.T) {
	f := newCalculateFixture(t)

	f.airports.EXPECT().GetAirport(gomock.Any(), "JFK").Return(jfkAirport(), nil)
	f.airports.EXPECT().GetAirport(gomock.Any(), "LAX").Return(laxAirport(), nil)

	estimate, err := f.uc.CalculateRouteEmissions(context.Background(), models.CalculateEmissionsRequest{
		From: "JFK",
		To:   "LAX",
	})

	assert.NoError(t, err)
	assert.Equal(t, "economy", estimate.Class)
	assert.Equal(t, 1, estimate.Passengers)
}

func TestCalculateRouteEmissions_InvalidCodes(t *testing.T) {
	f := newCalculateFixture(t)

	_, err := f.uc.CalculateRouteEmissions(context.Background(), models.CalculateEmissionsRequest{
		From: "J",
		To:   "LAX",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = f.uc.CalculateRouteEmissions(context.Background(), models.CalculateEmissionsRequest{
		From: "JFK",
		To:   "JFK",
	})
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCalculateRouteEmissions_UnknownAirport(t *testing.T) {
	f := newCalculateFixture(t)

	f.airports.EXPECT().
		GetAirport(gomock.Any(), "JFK").
		Return(nil, apperrors.NotFoundf("airport JFK not found"))

	_, err := f.uc.CalculateRouteEmissions(context.Background(), models.CalculateEmissionsRequest{
		From: "JFK",
		To:   "LAX",
	})
	assert.True(t, apperrors.IsNotFound(err))
}
