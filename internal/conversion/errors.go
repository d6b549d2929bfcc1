package conversion

import (
	"errors"
	"fmt"

	"unit-converter/internal/types"
)

// ErrInvalidUnit matches any *InvalidUnitError via errors.Is
var ErrInvalidUnit = errors.New("invalid unit")

// InvalidUnitError reports a unit that does not belong to the requested category
type InvalidUnitError struct {
	Category types.Category
	Unit     types.Unit
}

func (e *InvalidUnitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unit %q does not belong to category %q", e.Unit, e.Category)
}

// Is lets callers classify the error without a type assertion
func (e *InvalidUnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}
