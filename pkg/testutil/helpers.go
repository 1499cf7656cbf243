// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/realty-calc/pkg/loans"
)

// FindYear finds the balance point recorded for year in the series.
// Returns a pointer to the point if found, nil otherwise.
func FindYear(series loans.PayoffSeries, year int) *loans.BalancePoint {
	for i := range series {
		if series[i].Year == year {
			return &series[i]
		}
	}
	return nil
}

// FindSlice finds a breakdown slice by label.
// Returns a pointer to the slice if found, nil otherwise.
func FindSlice(slices []loans.Slice, label string) *loans.Slice {
	for i := range slices {
		if slices[i].Label == label {
			return &slices[i]
		}
	}
	return nil
}
