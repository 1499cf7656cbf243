// Package format converts between raw user-entered text and currency values.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown in place of a figure that cannot be computed.
const Placeholder = "-"

// WholeCurrency returns a currency string rounded to whole units (e.g., "$97,705").
func WholeCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}
	return "$" + humanize.Comma(rounded)
}

// Sanitize strips everything except digits and the decimal point, the way the
// input fields do while typing ("$1,500.00" becomes "1500.00").
func Sanitize(raw string) string {
	var builder strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// ParseAmount converts user-entered text into a non-negative number. Empty or
// unparseable input yields 0.
func ParseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(Sanitize(raw), 64)
	if err != nil || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseWhole converts user-entered text into a non-negative whole number,
// keeping digits only. Empty or unparseable input yields 0.
func ParseWhole(raw string) int {
	var builder strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	value, err := strconv.Atoi(builder.String())
	if err != nil {
		return 0
	}
	return value
}
