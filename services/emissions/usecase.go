package emissions

import (
	"context"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/models"
)

// EmissionsUseCase defines the interface for emission calculation and
// reporting use cases
type EmissionsUseCase interface {
	// CalculateRouteEmissions resolves both airports and returns the
	// one-way emission estimate for the route
	CalculateRouteEmissions(ctx context.Context, req models.CalculateEmissionsRequest) (*models.EmissionEstimate, error)

	// GetEmissionsSummary returns the user's bookings grouped into calendar
	// periods, served through the report cache
	GetEmissionsSummary(ctx context.Context, userID uuid.UUID, period models.PeriodGranularity) (*models.UserEmissionsSummary, error)

	// GetEmissionsSummaryByDateRange is GetEmissionsSummary restricted to
	// bookings created within the inclusive date range
	GetEmissionsSummaryByDateRange(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, period models.PeriodGranularity) (*models.UserEmissionsSummary, error)

	// ClearUserCache drops the user's cached summaries for the four
	// canonical period granularities
	ClearUserCache(ctx context.Context, userID uuid.UUID) error

	// AvailableClasses lists the supported travel classes in fixed order
	AvailableClasses() []string
}
