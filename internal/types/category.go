package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when text does not name a category
var ErrUnknownCategory = errors.New("unknown category")

// Category is a domain of commensurable units
type Category int

const (
	Length      Category = 1
	Weight      Category = 2
	Temperature Category = 3
	Time        Category = 4
)

type categoryInfo struct {
	name      string
	label     string
	canonical Unit
	units     []Unit
}

// categories holds every category in display order
var categories = []Category{Length, Weight, Temperature, Time}

var categoryInfos = map[Category]categoryInfo{
	Length: {
		name:      "length",
		label:     "Length 📏",
		canonical: Meters,
		units:     []Unit{Meters, Kilometers, Miles, Feet, Inches},
	},
	Weight: {
		name:      "weight",
		label:     "Weight ⚖️",
		canonical: Grams,
		units:     []Unit{Kilograms, Grams, Pounds, Ounces},
	},
	Temperature: {
		name:      "temperature",
		label:     "Temperature 🌡️",
		canonical: Celsius,
		units:     []Unit{Celsius, Fahrenheit, Kelvin},
	},
	Time: {
		name:      "time",
		label:     "Time ⏰",
		canonical: Seconds,
		units:     []Unit{Seconds, Minutes, Hours, Days},
	},
}

// Categories returns all categories in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// String returns the stable identifier of the category, e.g. "length"
func (c Category) String() string {
	if info, ok := categoryInfos[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown (%d)", int(c))
}

// Label returns the display label of the category
func (c Category) Label() string {
	if info, ok := categoryInfos[c]; ok {
		return info.label
	}
	return c.String()
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryInfos[c]
	return ok
}

// Canonical returns the reference unit of the category.
// For temperature the reference is only nominal: conversions there are affine.
func (c Category) Canonical() Unit {
	return categoryInfos[c].canonical
}

// Units returns the units of the category in display order.
// An unknown category has no units.
func (c Category) Units() []Unit {
	units := categoryInfos[c].units
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// Contains reports whether u belongs to c
func (c Category) Contains(u Unit) bool {
	return u.Valid() && u.Category() == c
}

// ParseCategory resolves a category from its identifier or display label.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		info := categoryInfos[c]
		if normalized == info.name || normalized == strings.ToLower(info.label) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
