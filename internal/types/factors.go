package types

// Conversion factors to the canonical unit of each linear category
const (
	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.34
	FeetToMeters       = 0.3048
	InchesToMeters     = 0.0254

	GramsPerKilogram = 1000.0
	GramsPerPound    = 453.592
	GramsPerOunce    = 28.3495

	SecondsPerMinute = 60.0
	SecondsPerHour   = 3600.0
	SecondsPerDay    = 86400.0
)

// Temperature fixed points
const (
	FahrenheitFreezing = 32.0
	KelvinOffset       = 273.15
)
