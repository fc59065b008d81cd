package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
)

// periodKey identifies a calendar period explicitly. Grouping and ordering
// compare the numeric fields, never formatted labels, so periods sort
// chronologically for every granularity.
type periodKey struct {
	year  int
	month int
	week  int
	day   int
}

func newPeriodKey(t time.Time, granularity models.PeriodGranularity) periodKey {
	t = t.UTC()
	switch granularity {
	case models.PeriodDaily:
		year, month, day := t.Date()
		return periodKey{year: year, month: int(month), day: day}
	case models.PeriodWeekly:
		year, week := t.ISOWeek()
		return periodKey{year: year, week: week}
	case models.PeriodYearly:
		return periodKey{year: t.Year()}
	default:
		return periodKey{year: t.Year(), month: int(t.Month())}
	}
}

func (k periodKey) before(other periodKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	if k.month != other.month {
		return k.month < other.month
	}
	if k.week != other.week {
		return k.week < other.week
	}
	return k.day < other.day
}

// label renders the period for display, zero-padded so labels also sort
// chronologically
func (k periodKey) label(granularity models.PeriodGranularity) string {
	switch granularity {
	case models.PeriodDaily:
		return fmt.Sprintf("%04d-%02d-%02d", k.year, k.month, k.day)
	case models.PeriodWeekly:
		return fmt.Sprintf("%04d-%02d", k.year, k.week)
	case models.PeriodYearly:
		return fmt.Sprintf("%04d", k.year)
	default:
		return fmt.Sprintf("%04d-%02d", k.year, k.month)
	}
}

// buildSummary groups the user's booking emission entries into calendar
// periods. Per-booking detail is attached only for whole-history summaries;
// date-range summaries carry the aggregates alone.
func buildSummary(
	user *models.User,
	granularity models.PeriodGranularity,
	dateRange *models.DateRange,
	entries []models.BookingEmissionEntry,
	includeBookings bool,
) *models.UserEmissionsSummary {
	grouped := make(map[periodKey][]models.BookingEmissionEntry)
	keys := make([]periodKey, 0)
	totalEmissions := 0.0

	for _, entry := range entries {
		key := newPeriodKey(entry.CreatedAt, granularity)
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], entry)
		totalEmissions += entry.Emissions
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	periods := make([]models.PeriodSummary, 0, len(keys))
	for _, key := range keys {
		group := grouped[key]
		sum := 0.0
		for _, entry := range group {
			sum += entry.Emissions
		}

		summary := models.PeriodSummary{
			Period:           key.label(granularity),
			TotalEmissions:   utils.Round2(sum),
			BookingCount:     len(group),
			AverageEmissions: utils.Round2(sum / float64(len(group))),
		}
		if includeBookings {
			summary.Bookings = bookingDetails(group)
		}
		periods = append(periods, summary)
	}

	return &models.UserEmissionsSummary{
		UserID:         user.ID,
		UserName:       user.Name,
		PeriodType:     granularity,
		DateRange:      dateRange,
		TotalEmissions: utils.Round2(totalEmissions),
		TotalBookings:  len(entries),
		Periods:        periods,
		GeneratedAt:    models.Now(),
	}
}

// bookingDetails keeps the repository's newest-first ordering
func bookingDetails(entries []models.BookingEmissionEntry) []models.BookingEmissionDetail {
	details := make([]models.BookingEmissionDetail, 0, len(entries))
	for _, entry := range entries {
		details = append(details, models.BookingEmissionDetail{
			ID:        entry.BookingID,
			Emissions: entry.Emissions,
			Status:    entry.Status,
			Flight: models.FlightRoute{
				From:    entry.FlightFrom,
				To:      entry.FlightTo,
				Airline: entry.Airline,
				Date:    entry.FlightDate,
			},
			CreatedAt: models.FormatTime(entry.CreatedAt),
		})
	}
	return details
}
