package conversion

import "unit-converter/internal/types"

// convertTemperature applies the affine formula for each directed pair.
// Callers must have checked both units belong to types.Temperature.
func convertTemperature(from, to types.Unit, magnitude float64) (float64, error) {
	if from == to {
		return magnitude, nil
	}

	switch {
	case from == types.Celsius && to == types.Fahrenheit:
		return magnitude*9/5 + types.FahrenheitFreezing, nil
	case from == types.Celsius && to == types.Kelvin:
		return magnitude + types.KelvinOffset, nil
	case from == types.Fahrenheit && to == types.Celsius:
		return (magnitude - types.FahrenheitFreezing) * 5 / 9, nil
	case from == types.Fahrenheit && to == types.Kelvin:
		return (magnitude-types.FahrenheitFreezing)*5/9 + types.KelvinOffset, nil
	case from == types.Kelvin && to == types.Celsius:
		return magnitude - types.KelvinOffset, nil
	case from == types.Kelvin && to == types.Fahrenheit:
		return (magnitude-types.KelvinOffset)*9/5 + types.FahrenheitFreezing, nil
	}

	// Only reachable when a unit outside the category slips past the caller
	offender := to
	if from.Category() != types.Temperature {
		offender = from
	}
	return 0, &InvalidUnitError{Category: types.Temperature, Unit: offender}
}
