package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
)

func TestCalculateEmissions_ShortHaulRate(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateEmissions(500, "economy", 1)

	assert.NoError(t, err)
	assert.Equal(t, 127.5, emissions)
}

func TestCalculateEmissions_LongHaulRate(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateEmissions(2000, "economy", 1)

	assert.NoError(t, err)
	assert.Equal(t, 360.0, emissions)
}

func TestCalculateEmissions_ThresholdBoundary(t *testing.T) {
	calc := New()

	// 1499.0 km is still short haul
	below, err := calc.CalculateEmissions(1499, "economy", 1)
	assert.NoError(t, err)
	assert.Equal(t, 382.25, below)

	// exactly 1500 km switches to the long haul rate
	at, err := calc.CalculateEmissions(1500, "economy", 1)
	assert.NoError(t, err)
	assert.Equal(t, 270.0, at)
}

func TestCalculateEmissions_RoundsHalfUp(t *testing.T) {
	calc := New()

	// 1 km economy is 0.255 kg, which must round up to 0.26
	emissions, err := calc.CalculateEmissions(1, "economy", 1)

	assert.NoError(t, err)
	assert.Equal(t, 0.26, emissions)
}

func TestCalculateEmissions_ClassMultipliers(t *testing.T) {
	calc := New()

	tests := []struct {
		class    string
		expected float64
	}{
		{"economy", 127.5},
		{"premium_economy", 153.0},
		{"business", 191.25},
		{"first", 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			emissions, err := calc.CalculateEmissions(500, tt.class, 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, emissions)
		})
	}
}

func TestCalculateEmissions_ClassIsCaseInsensitive(t *testing.T) {
	calc := New()

	lower, err := calc.CalculateEmissions(500, "business", 1)
	assert.NoError(t, err)

	upper, err := calc.CalculateEmissions(500, "Business", 1)
	assert.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestCalculateEmissions_ScalesWithPassengers(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateEmissions(500, "economy", 2)
	assert.NoError(t, err)
	assert.Equal(t, 255.0, emissions)

	emissions, err = calc.CalculateEmissions(500, "economy", 1000)
	assert.NoError(t, err)
	assert.Equal(t, 127500.0, emissions)
}

func TestCalculateEmissions_InvalidInputs(t *testing.T) {
	calc := New()

	tests := []struct {
		name       string
		distance   float64
		class      string
		passengers int
	}{
		{"zero distance", 0, "economy", 1},
		{"negative distance", -10, "economy", 1},
		{"zero passengers", 500, "economy", 0},
		{"negative passengers", 500, "economy", -1},
		{"too many passengers", 500, "economy", 1001},
		{"unknown class", 500, "luxury", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.CalculateEmissions(tt.distance, tt.class, tt.passengers)
			assert.Error(t, err)
			assert.True(t, apperrors.IsInvalidInput(err))
		})
	}
}

func TestCalculateShortHaulEmissions(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateShortHaulEmissions(1000, "economy", 1)
	assert.NoError(t, err)
	assert.Equal(t, 255.0, emissions)

	_, err = calc.CalculateShortHaulEmissions(1500, "economy", 1)
	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCalculateLongHaulEmissions(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateLongHaulEmissions(1500, "economy", 1)
	assert.NoError(t, err)
	assert.Equal(t, 270.0, emissions)

	_, err = calc.CalculateLongHaulEmissions(1499, "economy", 1)
	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestCalculateRoundTripEmissions(t *testing.T) {
	calc := New()

	emissions, err := calc.CalculateRoundTripEmissions(500, "economy", 1)
	assert.NoError(t, err)
	assert.Equal(t, 255.0, emissions)

	_, err = calc.CalculateRoundTripEmissions(0, "economy", 1)
	assert.Error(t, err)
}

func TestClassMultiplier(t *testing.T) {
	calc := New()

	multiplier, err := calc.ClassMultiplier("business")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, multiplier)

	multiplier, err = calc.ClassMultiplier("FIRST")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, multiplier)

	_, err = calc.ClassMultiplier("luxury")
	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestAvailableClasses(t *testing.T) {
	calc := New()

	classes := calc.AvailableClasses()
	assert.Equal(t, []string{"economy", "premium_economy", "business", "first"}, classes)

	// callers must not be able to mutate the calculator's class list
	classes[0] = "mutated"
	assert.Equal(t, []string{"economy", "premium_economy", "business", "first"}, calc.AvailableClasses())
}
