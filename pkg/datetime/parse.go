// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/realty-calc/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateDate checks that date is in the DateTimeLayout format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("expected date in YYYY-MM format, got %q: %w", date, err)
	}
	return nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// PaymentMonth returns the month in which the nth payment (1-indexed) falls
// when the first payment is made in startDate.
func PaymentMonth(startDate string, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("payment number must be at least 1, got %d", n)
	}
	return OffsetDate(startDate, DateTimeLayout, n-1)
}
