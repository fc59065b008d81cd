package usecase

import (
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions"
	"github.com/greentrip/greentrip/services/emissions/calculator"
)

// EmissionsUC implements the emissions use case interface
type EmissionsUC struct {
	cfg         *models.Config
	calc        *calculator.Calculator
	historyRepo emissions.BookingHistoryRepo
	userRepo    emissions.UserProvider
	airportRepo emissions.AirportResolver
	cache       emissions.CacheStore
}

// NewEmissionsUC creates a new emissions use case
func NewEmissionsUC(
	cfg *models.Config,
	calc *calculator.Calculator,
	historyRepo emissions.BookingHistoryRepo,
	userRepo emissions.UserProvider,
	airportRepo emissions.AirportResolver,
	cache emissions.CacheStore,
) *EmissionsUC {
	return &EmissionsUC{
		cfg:         cfg,
		calc:        calc,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		airportRepo: airportRepo,
		cache:       cache,
	}
}

// AvailableClasses lists the supported travel classes in fixed order
func (uc *EmissionsUC) AvailableClasses() []string {
	return uc.calc.AvailableClasses()
}
