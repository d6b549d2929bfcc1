package conversion

import (
	"fmt"
	"strings"

	"unit-converter/internal/types"
)

// Request is a single conversion of Magnitude from one unit to another
type Request struct {
	Category  types.Category
	From      types.Unit
	To        types.Unit
	Magnitude float64
}

// Result is the converted magnitude together with the request that produced it
type Result struct {
	Request Request
	Value   float64
}

// CategoryInfo describes a category and its units for selection lists
type CategoryInfo struct {
	ID        string     `json:"id" yaml:"id"`
	Label     string     `json:"label" yaml:"label"`
	Canonical string     `json:"canonical" yaml:"canonical"`
	Units     []UnitInfo `json:"units" yaml:"units"`
}

// UnitInfo describes a single unit for selection lists
type UnitInfo struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// ParseRequest coerces text input into a Request.
// An empty category is inferred from the source unit.
func ParseRequest(category, from, to string, magnitude float64) (Request, error) {
	fromUnit, err := types.ParseUnit(from)
	if err != nil {
		return Request{}, fmt.Errorf("invalid source unit: %w", err)
	}
	toUnit, err := types.ParseUnit(to)
	if err != nil {
		return Request{}, fmt.Errorf("invalid target unit: %w", err)
	}

	cat := fromUnit.Category()
	if strings.TrimSpace(category) != "" {
		cat, err = types.ParseCategory(category)
		if err != nil {
			return Request{}, fmt.Errorf("invalid category: %w", err)
		}
	}

	return Request{
		Category:  cat,
		From:      fromUnit,
		To:        toUnit,
		Magnitude: magnitude,
	}, nil
}

func newCategoryInfo(c types.Category) CategoryInfo {
	units := c.Units()
	info := CategoryInfo{
		ID:        c.String(),
		Label:     c.Label(),
		Canonical: c.Canonical().String(),
		Units:     make([]UnitInfo, 0, len(units)),
	}
	for _, u := range units {
		info.Units = append(info.Units, UnitInfo{
			ID:     u.String(),
			Label:  u.Label(),
			Symbol: u.Symbol(),
		})
	}
	return info
}
