package utils

import "math"

// roundingGrain snaps away binary float noise before rounding, so 34.49999999999999
// produced by 25*1.38 still rounds the way the designer expects
const roundingGrain = 1e9

// RoundCurrency rounds to the nearest integer, halves away from zero, after
// trimming accumulated floating point error. Non-finite input rounds to 0.
func RoundCurrency(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	snapped := math.Round(value*roundingGrain) / roundingGrain
	return int(math.Round(snapped))
}

// RoundNonNegative rounds like RoundCurrency and clamps negatives to zero
func RoundNonNegative(value float64) int {
	rounded := RoundCurrency(value)
	if rounded < 0 {
		return 0
	}
	return rounded
}

// Mean returns the arithmetic mean of values, or fallback when empty
func Mean(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// GeometricMean returns the Nth root of the product of values, or fallback
// when empty. A zero factor yields zero; negative factors have no real root
// and also yield fallback.
func GeometricMean(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	product := 1.0
	for _, v := range values {
		if v < 0 {
			return fallback
		}
		product *= v
	}
	return math.Pow(product, 1.0/float64(len(values)))
}

// CeilDiv returns ceil(a*b/c) computed in floating point, with c<=0 treated as 1
func CeilDiv(a, b, c int) int {
	if c <= 0 {
		c = 1
	}
	return int(math.Ceil(float64(a) * float64(b) / float64(c)))
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
