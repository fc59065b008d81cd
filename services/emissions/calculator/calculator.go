// Package calculator implements the flight emission model: a
// distance-banded per-kilometer CO2 rate scaled by travel class and
// passenger count.
package calculator

import (
	"strings"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/utils"
)

// Base emission rates in kg CO2 per passenger per km. Short-haul flights
// burn disproportionally more fuel per km because of the takeoff/landing
// cycle
const (
	BaseRateShortHaul = 0.255
	BaseRateLongHaul  = 0.180
)

// ShortHaulThresholdKm is the distance band boundary. A flight of exactly
// this distance is long-haul
const ShortHaulThresholdKm = 1500.0

// MaxPassengers bounds a single calculation
const MaxPassengers = 1000

var classMultipliers = map[string]float64{
	"economy":         1.0,
	"premium_economy": 1.2,
	"business":        1.5,
	"first":           2.0,
}

// availableClasses lists the travel classes in their fixed public order
var availableClasses = []string{"economy", "premium_economy", "business", "first"}

// Calculator computes flight emissions. It is stateless and safe for
// concurrent use
type Calculator struct{}

// New creates a Calculator
func New() *Calculator {
	return &Calculator{}
}

// CalculateEmissions returns the total emissions in kg CO2 for a flight of
// the given distance, travel class and passenger count, rounded to 2
// decimal places
func (c *Calculator) CalculateEmissions(distanceKm float64, class string, passengers int) (float64, error) {
	if err := c.validateInputs(distanceKm, class, passengers); err != nil {
		return 0, err
	}

	baseRate := baseEmissionRate(distanceKm)
	multiplier := classMultipliers[strings.ToLower(class)]

	perPassenger := distanceKm * baseRate * multiplier
	total := perPassenger * float64(passengers)

	return utils.Round2(total), nil
}

// CalculateShortHaulEmissions calculates emissions for flights below the
// short-haul threshold and rejects anything at or above it
func (c *Calculator) CalculateShortHaulEmissions(distanceKm float64, class string, passengers int) (float64, error) {
	if distanceKm >= ShortHaulThresholdKm {
		return 0, apperrors.InvalidInputf("distance must be less than %.0fkm for short haul flights", ShortHaulThresholdKm)
	}
	return c.CalculateEmissions(distanceKm, class, passengers)
}

// CalculateLongHaulEmissions calculates emissions for flights at or above
// the short-haul threshold and rejects anything below it
func (c *Calculator) CalculateLongHaulEmissions(distanceKm float64, class string, passengers int) (float64, error) {
	if distanceKm < ShortHaulThresholdKm {
		return 0, apperrors.InvalidInputf("distance must be at least %.0fkm for long haul flights", ShortHaulThresholdKm)
	}
	return c.CalculateEmissions(distanceKm, class, passengers)
}

// CalculateRoundTripEmissions doubles the one-way emissions and re-rounds
func (c *Calculator) CalculateRoundTripEmissions(distanceKm float64, class string, passengers int) (float64, error) {
	oneWay, err := c.CalculateEmissions(distanceKm, class, passengers)
	if err != nil {
		return 0, err
	}
	return utils.Round2(oneWay * 2), nil
}

// ClassMultiplier returns the emission multiplier for a travel class.
// Class matching is case-insensitive
func (c *Calculator) ClassMultiplier(class string) (float64, error) {
	multiplier, ok := classMultipliers[strings.ToLower(class)]
	if !ok {
		return 0, apperrors.InvalidInputf("invalid travel class: must be one of %s", strings.Join(availableClasses, ", "))
	}
	return multiplier, nil
}

// AvailableClasses returns the known travel classes in fixed order
func (c *Calculator) AvailableClasses() []string {
	classes := make([]string, len(availableClasses))
	copy(classes, availableClasses)
	return classes
}

func (c *Calculator) validateInputs(distanceKm float64, class string, passengers int) error {
	if distanceKm <= 0 {
		return apperrors.InvalidInputf("distance must be greater than 0")
	}
	if passengers <= 0 {
		return apperrors.InvalidInputf("number of passengers must be greater than 0")
	}
	if passengers > MaxPassengers {
		return apperrors.InvalidInputf("number of passengers cannot exceed %d", MaxPassengers)
	}
	if _, err := c.ClassMultiplier(class); err != nil {
		return err
	}
	return nil
}

func baseEmissionRate(distanceKm float64) float64 {
	if distanceKm < ShortHaulThresholdKm {
		return BaseRateShortHaul
	}
	return BaseRateLongHaul
}
