package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/constants"
	"github.com/greentrip/greentrip/internal/pkg/database"
	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

// GetEmissionsSummary returns the user's whole-history emissions report,
// served through the report cache. Cache failures fall back to direct
// computation; only persistence failures surface to the caller.
func (uc *EmissionsUC) GetEmissionsSummary(ctx context.Context, userID uuid.UUID, period models.PeriodGranularity) (*models.UserEmissionsSummary, error) {
	user, err := uc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := summaryCacheKey(userID, period)
	if cached, ok := uc.cachedSummary(ctx, cacheKey); ok {
		return cached, nil
	}

	entries, err := uc.historyRepo.GetEmissionEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	summary := buildSummary(user, period, nil, entries, true)
	uc.storeSummary(ctx, cacheKey, summary)
	return summary, nil
}

// GetEmissionsSummaryByDateRange returns the user's emissions report limited
// to bookings created within the inclusive date range. Cached under a
// range-specific key that ClearUserCache does not cover, so stale range
// reports expire only through the TTL.
func (uc *EmissionsUC) GetEmissionsSummaryByDateRange(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, period models.PeriodGranularity) (*models.UserEmissionsSummary, error) {
	if dateRange.End.Before(dateRange.Start) {
		return nil, apperrors.InvalidInputf("end date must not be before start date")
	}

	user, err := uc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := rangeCacheKey(userID, dateRange, period)
	if cached, ok := uc.cachedSummary(ctx, cacheKey); ok {
		return cached, nil
	}

	entries, err := uc.historyRepo.GetEmissionEntriesInRange(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	summary := buildSummary(user, period, &dateRange, entries, false)
	uc.storeSummary(ctx, cacheKey, summary)
	return summary, nil
}

// ClearUserCache drops the user's cached summaries for the four canonical
// period granularities
func (uc *EmissionsUC) ClearUserCache(ctx context.Context, userID uuid.UUID) error {
	for _, period := range models.PeriodGranularities {
		if err := uc.cache.Delete(ctx, summaryCacheKey(userID, period)); err != nil {
			return fmt.Errorf("failed to clear report cache: %w", err)
		}
	}
	return nil
}

func (uc *EmissionsUC) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// cachedSummary reads a summary from the cache. A miss, an unreachable cache
// or an undecodable payload all report a miss: the summary is recomputed.
func (uc *EmissionsUC) cachedSummary(ctx context.Context, key string) (*models.UserEmissionsSummary, bool) {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.Warn("report cache read failed, computing directly",
				logger.String("cache_key", key),
				logger.Err(err))
		}
		return nil, false
	}

	var summary models.UserEmissionsSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		logger.Warn("discarding undecodable cached report",
			logger.String("cache_key", key),
			logger.Err(err))
		return nil, false
	}
	return &summary, true
}

// storeSummary writes a summary to the cache. Failures are logged only; the
// freshly computed summary is still returned to the caller.
func (uc *EmissionsUC) storeSummary(ctx context.Context, key string, summary *models.UserEmissionsSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		logger.Warn("failed to encode report for cache",
			logger.String("cache_key", key),
			logger.Err(err))
		return
	}
	if err := uc.cache.Set(ctx, key, string(payload), uc.reportCacheTTL()); err != nil {
		logger.Warn("report cache write failed",
			logger.String("cache_key", key),
			logger.Err(err))
	}
}

func (uc *EmissionsUC) reportCacheTTL() time.Duration {
	return time.Duration(uc.cfg.Emissions.ReportCacheTTLSeconds) * time.Second
}

func summaryCacheKey(userID uuid.UUID, period models.PeriodGranularity) string {
	return fmt.Sprintf(constants.KeyEmissionsSummary, userID, period)
}

func rangeCacheKey(userID uuid.UUID, dateRange models.DateRange, period models.PeriodGranularity) string {
	return fmt.Sprintf(constants.KeyEmissionsSummaryRange,
		userID,
		models.FormatDate(dateRange.Start),
		models.FormatDate(dateRange.End),
		period)
}
