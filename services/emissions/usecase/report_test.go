package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/database"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions/calculator"
	"github.com/greentrip/greentrip/services/emissions/mocks"
)

type reportFixture struct {
	uc      *EmissionsUC
	history *mocks.MockBookingHistoryRepo
	users   *mocks.MockUserProvider
	cache   *mocks.MockCacheStore
	user    *models.User
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	history := mocks.NewMockBookingHistoryRepo(ctrl)
	users := mocks.NewMockUserProvider(ctrl)
	cache := mocks.NewMockCacheStore(ctrl)
	airports := mocks.NewMockAirportResolver(ctrl)

	cfg := &models.Config{
		Emissions: models.EmissionsConfig{ReportCacheTTLSeconds: 120},
	}

	user := &models.User{ID: uuid.New(), Name: "Test Traveler"}

	return &reportFixture{
		uc:      NewEmissionsUC(cfg, calculator.New(), history, users, airports, cache),
		history: history,
		users:   users,
		cache:   cache,
		user:    user,
	}
}

func (f *reportFixture) expectUser() {
	f.users.EXPECT().
		GetUserByID(gomock.Any(), f.user.ID).
		Return(f.user, nil)
}

func TestGetEmissionsSummary_CacheMissComputesAndStores(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	key := fmt.Sprintf("emissions_summary:user:%s:period:monthly", f.user.ID)
	entries := []models.BookingEmissionEntry{
		{
			BookingID: uuid.New(),
			Emissions: 300.0,
			Status:    models.BookingStatusConfirmed,
			CreatedAt: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC),
		},
	}

	f.cache.EXPECT().
		Get(gomock.Any(), key).
		Return("", database.ErrCacheMiss)
	f.history.EXPECT().
		GetEmissionEntries(gomock.Any(), f.user.ID).
		Return(entries, nil)
	f.cache.EXPECT().
		Set(gomock.Any(), key, gomock.Any(), 120*time.Second).
		Return(nil)

	summary, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.NoError(t, err)
	assert.Equal(t, 300.0, summary.TotalEmissions)
	assert.Equal(t, 1, summary.TotalBookings)
	assert.Equal(t, f.user.Name, summary.UserName)
}

func TestGetEmissionsSummary_CacheHitSkipsRepository(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	generatedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	cached := &models.UserEmissionsSummary{
		UserID:         f.user.ID,
		UserName:       f.user.Name,
		PeriodType:     models.PeriodMonthly,
		TotalEmissions: 42.0,
		TotalBookings:  1,
		Periods:        []models.PeriodSummary{},
		GeneratedAt:    generatedAt,
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	key := fmt.Sprintf("emissions_summary:user:%s:period:monthly", f.user.ID)
	f.cache.EXPECT().
		Get(gomock.Any(), key).
		Return(string(payload), nil)

	summary, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.NoError(t, err)
	assert.Equal(t, 42.0, summary.TotalEmissions)
	// a cache hit returns the original computation time untouched
	assert.True(t, summary.GeneratedAt.Equal(generatedAt))
}

func TestGetEmissionsSummary_CacheOutageFallsBackToComputation(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))
	f.history.EXPECT().
		GetEmissionEntries(gomock.Any(), f.user.ID).
		Return([]models.BookingEmissionEntry{}, nil)
	f.cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	summary, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalBookings)
}

func TestGetEmissionsSummary_UndecodableCachedPayloadRecomputes(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return("{not json", nil)
	f.history.EXPECT().
		GetEmissionEntries(gomock.Any(), f.user.ID).
		Return([]models.BookingEmissionEntry{}, nil)
	f.cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.NoError(t, err)
}

func TestGetEmissionsSummary_RepositoryFailurePropagates(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return("", database.ErrCacheMiss)
	f.history.EXPECT().
		GetEmissionEntries(gomock.Any(), f.user.ID).
		Return(nil, errors.New("db unreachable"))

	_, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.Error(t, err)
}

func TestGetEmissionsSummary_UnknownUser(t *testing.T) {
	f := newReportFixture(t)

	f.users.EXPECT().
		GetUserByID(gomock.Any(), f.user.ID).
		Return(nil, apperrors.NotFoundf("user not found"))

	_, err := f.uc.GetEmissionsSummary(context.Background(), f.user.ID, models.PeriodMonthly)

	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetEmissionsSummaryByDateRange_UsesRangeKey(t *testing.T) {
	f := newReportFixture(t)
	f.expectUser()

	dateRange := models.DateRange{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	}
	key := fmt.Sprintf("emissions_summary:user:%s:range:2025-07-01:2025-07-31:period:monthly", f.user.ID)

	f.cache.EXPECT().
		Get(gomock.Any(), key).
		Return("", database.ErrCacheMiss)
	f.history.EXPECT().
		GetEmissionEntriesInRange(gomock.Any(), f.user.ID, dateRange).
		Return([]models.BookingEmissionEntry{}, nil)
	f.cache.EXPECT().
		Set(gomock.Any(), key, gomock.Any(), 120*time.Second).
		Return(nil)

	summary, err := f.uc.GetEmissionsSummaryByDateRange(context.Background(), f.user.ID, dateRange, models.PeriodMonthly)

	assert.NoError(t, err)
	assert.NotNil(t, summary.DateRange)
}

func TestGetEmissionsSummaryByDateRange_RejectsInvertedRange(t *testing.T) {
	f := newReportFixture(t)

	dateRange := models.DateRange{
		Start: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := f.uc.GetEmissionsSummaryByDateRange(context.Background(), f.user.ID, dateRange, models.PeriodMonthly)

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestClearUserCache_DeletesCanonicalPeriodKeys(t *testing.T) {
	f := newReportFixture(t)

	for _, period := range []string{"daily", "weekly", "monthly", "yearly"} {
		key := fmt.Sprintf("emissions_summary:user:%s:period:%s", f.user.ID, period)
		f.cache.EXPECT().
			Delete(gomock.Any(), key).
			Return(nil)
	}

	err := f.uc.ClearUserCache(context.Background(), f.user.ID)

	assert.NoError(t, err)
}

func TestClearUserCache_PropagatesDeleteFailure(t *testing.T) {
	f := newReportFixture(t)

	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	err := f.uc.ClearUserCache(context.Background(), f.user.ID)

	assert.Error(t, err)
}
