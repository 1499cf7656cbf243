package loans

import (
	"strconv"
	"strings"

	"github.com/iwvelando/realty-calc/pkg/constants"
)

// Frequency is how often a payment is made. The zero value is Monthly.
type Frequency int

const (
	// Monthly is twelve payments a year.
	Monthly Frequency = iota
	// Biweekly is twenty-six payments a year.
	Biweekly
	// Weekly is fifty-two payments a year.
	Weekly
)

// PeriodsPerYear returns the number of payment periods in a year. Unknown
// frequencies are treated as monthly.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Biweekly:
		return constants.BiweeklyPeriodsPerYear
	case Weekly:
		return constants.WeeklyPeriodsPerYear
	default:
		return constants.MonthsPerYear
	}
}

// String returns the configuration key for the frequency.
func (f Frequency) String() string {
	switch f {
	case Biweekly:
		return "biweekly"
	case Weekly:
		return "weekly"
	default:
		return "monthly"
	}
}

// Label returns the display label used next to a payment figure.
func (f Frequency) Label() string {
	switch f {
	case Biweekly:
		return "Bi-Weekly"
	case Weekly:
		return "Weekly"
	default:
		return "Monthly"
	}
}

// ParseFrequency converts a configuration value into a Frequency. The boolean
// is false when the value is not recognized, in which case Monthly is
// returned.
func ParseFrequency(value string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "monthly":
		return Monthly, true
	case "biweekly", "bi-weekly":
		return Biweekly, true
	case "weekly":
		return Weekly, true
	default:
		return Monthly, false
	}
}

// AmortizationOptions maps the selectable amortization labels to their term in
// years.
var AmortizationOptions = map[string]int{
	"fiveYear":       5,
	"tenYear":        10,
	"fifteenYear":    15,
	"twentyYear":     20,
	"twentyFiveYear": 25,
	"thirtyYear":     30,
}

// ValidAmortizationYears reports whether years is one of the selectable terms.
func ValidAmortizationYears(years int) bool {
	for _, option := range AmortizationOptions {
		if option == years {
			return true
		}
	}
	return false
}

// ParseAmortization converts an amortization label ("twentyFiveYear") or a
// bare number of years ("25") into a term in years. Unknown values fall back
// to constants.DefaultAmortizationYears and report false.
func ParseAmortization(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if years, ok := AmortizationOptions[trimmed]; ok {
		return years, true
	}
	if years, err := strconv.Atoi(trimmed); err == nil && ValidAmortizationYears(years) {
		return years, true
	}
	return constants.DefaultAmortizationYears, trimmed == ""
}
