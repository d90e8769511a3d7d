package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"exact integer", 50, 50},
		{"rounds down below half", 7.4, 7},
		{"rounds half away from zero", 34.5, 35},
		{"float noise below half still rounds up", 34.49999999999999, 35},
		{"sub-linear ingredient time", 3 * math.Pow(4, 0.7), 8},
		{"negative half", -2.5, -3},
		{"NaN becomes zero", math.NaN(), 0},
		{"infinity becomes zero", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundCurrency(tt.value))
		})
	}
}

func TestRoundNonNegative(t *testing.T) {
	assert.Equal(t, 0, RoundNonNegative(-12.7))
	assert.Equal(t, 13, RoundNonNegative(12.7))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil, 0))
	assert.Equal(t, 1.0, Mean([]float64{}, 1))
	assert.InDelta(t, 1.5, Mean([]float64{1, 2}, 0), 1e-12)
}

func TestGeometricMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		fallback float64
		expected float64
	}{
		{"empty uses fallback", nil, 1, 1},
		{"single value", []float64{1.5}, 1, 1.5},
		{"square root of product", []float64{2, 8}, 1, 4},
		{"zero factor", []float64{0, 5}, 1, 0},
		{"negative factor uses fallback", []float64{-1, 4}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GeometricMean(tt.values, tt.fallback), 1e-9)
		})
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 3, CeilDiv(2, 3, 2))
	assert.Equal(t, 2, CeilDiv(1, 3, 2))
	assert.Equal(t, 6, CeilDiv(2, 3, 0), "non-positive divisor is treated as one")
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.25))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}
