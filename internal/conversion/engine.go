// Package conversion converts magnitudes between units of the same category.
//
// Length, weight and time convert through a canonical unit using a single
// factor per unit. Temperature uses explicit affine formulas. Every function
// here is pure and safe for concurrent use.
package conversion

import (
	"unit-converter/internal/types"
)

// Convert expresses magnitude, given in from, in the unit to.
// Both units must belong to category, otherwise an *InvalidUnitError naming
// the first offending unit is returned. Results are never rounded.
func Convert(category types.Category, from, to types.Unit, magnitude float64) (float64, error) {
	if !category.Contains(from) {
		return 0, &InvalidUnitError{Category: category, Unit: from}
	}
	if !category.Contains(to) {
		return 0, &InvalidUnitError{Category: category, Unit: to}
	}

	if category == types.Temperature {
		return convertTemperature(from, to, magnitude)
	}

	if from == to {
		return magnitude, nil
	}
	return convertLinear(from, to, magnitude), nil
}
