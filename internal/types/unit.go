package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when text does not name a unit
var ErrUnknownUnit = errors.New("unknown unit")

// Unit identifies a unit of measure. Every unit belongs to exactly one Category.
type Unit int

const (
	Meters Unit = iota + 1
	Kilometers
	Miles
	Feet
	Inches

	Kilograms
	Grams
	Pounds
	Ounces

	Celsius
	Fahrenheit
	Kelvin

	Seconds
	Minutes
	Hours
	Days
)

type unitInfo struct {
	category Category
	name     string
	label    string
	symbol   string
}

var unitInfos = map[Unit]unitInfo{
	Meters:     {Length, "meters", "Meters", "m"},
	Kilometers: {Length, "kilometers", "Kilometers", "km"},
	Miles:      {Length, "miles", "Miles", "mi"},
	Feet:       {Length, "feet", "Feet", "ft"},
	Inches:     {Length, "inches", "Inches", "in"},

	Kilograms: {Weight, "kilograms", "Kilograms", "kg"},
	Grams:     {Weight, "grams", "Grams", "g"},
	Pounds:    {Weight, "pounds", "Pounds", "lb"},
	Ounces:    {Weight, "ounces", "Ounces", "oz"},

	Celsius:    {Temperature, "celsius", "Celsius", "°C"},
	Fahrenheit: {Temperature, "fahrenheit", "Fahrenheit", "°F"},
	Kelvin:     {Temperature, "kelvin", "Kelvin", "K"},

	Seconds: {Time, "seconds", "Seconds", "s"},
	Minutes: {Time, "minutes", "Minutes", "min"},
	Hours:   {Time, "hours", "Hours", "h"},
	Days:    {Time, "days", "Days", "d"},
}

// unitAliases holds extra spellings accepted by ParseUnit
var unitAliases = map[string]Unit{
	"c":    Celsius,
	"f":    Fahrenheit,
	"lbs":  Pounds,
	"sec":  Seconds,
	"secs": Seconds,
	"mins": Minutes,
	"hr":   Hours,
	"hrs":  Hours,
}

// String returns the stable identifier of the unit, e.g. "kilometers"
func (u Unit) String() string {
	if info, ok := unitInfos[u]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown (%d)", int(u))
}

// Label returns the display label of the unit
func (u Unit) Label() string {
	if info, ok := unitInfos[u]; ok {
		return info.label
	}
	return u.String()
}

// Symbol returns the short symbol of the unit, e.g. "km"
func (u Unit) Symbol() string {
	return unitInfos[u].symbol
}

// Category returns the category that owns the unit, or 0 for an unknown unit
func (u Unit) Category() Category {
	return unitInfos[u].category
}

// Valid reports whether u is one of the known units
func (u Unit) Valid() bool {
	_, ok := unitInfos[u]
	return ok
}

// ParseUnit resolves a unit from its identifier, label or symbol.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for u, info := range unitInfos {
		if normalized == info.name || normalized == strings.ToLower(info.symbol) {
			return u, nil
		}
	}
	if u, ok := unitAliases[normalized]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
