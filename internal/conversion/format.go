package conversion

import (
	"fmt"
	"strconv"
)

// DefaultDecimals is the number of decimal places shown for a result
const DefaultDecimals = 4

// Format renders the result as "<input> <from> = <value> <to>", e.g.
// "1 Kilometers = 0.6214 Miles". The input keeps its shortest form; the
// value is shown with the given number of decimals (DefaultDecimals if negative).
func (r Result) Format(decimals int) string {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	return fmt.Sprintf("%s %s = %.*f %s",
		strconv.FormatFloat(r.Request.Magnitude, 'f', -1, 64),
		r.Request.From.Label(),
		decimals,
		r.Value,
		r.Request.To.Label(),
	)
}

// String formats the result with DefaultDecimals
func (r Result) String() string {
	return r.Format(DefaultDecimals)
}
