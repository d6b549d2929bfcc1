package conversion

import "unit-converter/internal/types"

// factors maps every length, weight and time unit to its multiple of the
// category's canonical unit (meters, grams, seconds).
var factors = map[types.Unit]float64{
	types.Meters:     1,
	types.Kilometers: types.MetersPerKilometer,
	types.Miles:      types.MetersPerMile,
	types.Feet:       types.FeetToMeters,
	types.Inches:     types.InchesToMeters,

	types.Grams:     1,
	types.Kilograms: types.GramsPerKilogram,
	types.Pounds:    types.GramsPerPound,
	types.Ounces:    types.GramsPerOunce,

	types.Seconds: 1,
	types.Minutes: types.SecondsPerMinute,
	types.Hours:   types.SecondsPerHour,
	types.Days:    types.SecondsPerDay,
}

// Factor returns the multiple of the canonical unit that one u represents.
// ok is false for units converted by formula (temperature) and unknown units.
func Factor(u types.Unit) (factor float64, ok bool) {
	factor, ok = factors[u]
	return factor, ok
}

// convertLinear normalizes through the canonical unit: from -> canonical -> to
func convertLinear(from, to types.Unit, magnitude float64) float64 {
	canonical := magnitude * factors[from]
	return canonical / factors[to]
}
