package entity

import "math"

// ServingSize is one of the fixed fractional multipliers applied to a food's
// base macros when logging a meal.
type ServingSize string

const (
	ServingQuarter       ServingSize = "1/4"
	ServingThird         ServingSize = "1/3"
	ServingHalf          ServingSize = "1/2"
	ServingTwoThirds     ServingSize = "2/3"
	ServingThreeQuarters ServingSize = "3/4"
	ServingFull          ServingSize = "1"
)

// servingMultipliers maps serving tokens to their multipliers. The thirds are
// decimal-truncated (0.333 / 0.667), not exact fractions; logged meals must
// reproduce these values exactly.
var servingMultipliers = map[ServingSize]float64{
	ServingQuarter:       0.25,
	ServingThird:         0.333,
	ServingHalf:          0.5,
	ServingTwoThirds:     0.667,
	ServingThreeQuarters: 0.75,
	ServingFull:          1.0,
}

// Valid reports whether the serving size is one of the six known tokens.
func (s ServingSize) Valid() bool {
	_, ok := servingMultipliers[s]

	return ok
}

// Multiplier returns the fraction applied to base macros. Unknown tokens
// fall back to 1.0 rather than failing.
func (s ServingSize) Multiplier() float64 {
	if m, ok := servingMultipliers[s]; ok {
		return m
	}

	return 1.0
}

// Adjust scales a base (calories, protein) pair by the serving multiplier.
// Each value is rounded to the nearest integer, halves up.
func (s ServingSize) Adjust(calories, protein int) (int, int) {
	m := s.Multiplier()

	return int(math.Round(float64(calories) * m)), int(math.Round(float64(protein) * m))
}
