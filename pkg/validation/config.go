// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/realty-calc/pkg/cashflow"
	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/datetime"
	"github.com/iwvelando/realty-calc/pkg/loans"
)

// ValidateAmortization warns when an amortization label is not one of the
// selectable terms.
func ValidateAmortization(field, label string) string {
	if _, ok := loans.ParseAmortization(label); !ok {
		return fmt.Sprintf("%s '%s' is not one of %s - using %d years",
			field, label, strings.Join(amortizationLabels(), ", "), constants.DefaultAmortizationYears)
	}
	return ""
}

// amortizationLabels lists the selectable labels from shortest to longest term.
func amortizationLabels() []string {
	labels := make([]string, 0, len(loans.AmortizationOptions))
	for label := range loans.AmortizationOptions {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return loans.AmortizationOptions[labels[i]] < loans.AmortizationOptions[labels[j]]
	})
	return labels
}

// ValidateFrequency warns when a payment frequency is not recognized.
func ValidateFrequency(field, label string) string {
	if _, ok := loans.ParseFrequency(label); !ok {
		return fmt.Sprintf("%s '%s' is not one of monthly, biweekly, weekly - using monthly", field, label)
	}
	return ""
}

// ValidateOneTimePayment warns when a lump sum will never be applied.
func ValidateOneTimePayment(amount float64, year, amortizationYears int) string {
	if amount <= 0 {
		return ""
	}
	if year <= 0 {
		return fmt.Sprintf("One-time payment of %.2f has no year - it will be ignored", amount)
	}
	if year > amortizationYears {
		return fmt.Sprintf("One-time payment year %d is after the %d year amortization - it will be ignored",
			year, amortizationYears)
	}
	return ""
}

// ValidateStartDate warns when an optional start date is malformed.
func ValidateStartDate(date string) string {
	if date == "" {
		return ""
	}
	if err := datetime.ValidateDate(date); err != nil {
		return fmt.Sprintf("Mortgage start date ignored: %v", err)
	}
	return ""
}

// ValidateItem checks an income or expense line and returns warnings.
func ValidateItem(calculator, name, kind, period string) []string {
	var warnings []string
	label := name
	if label == "" {
		label = "(unnamed)"
	}

	if _, ok := cashflow.ParseKind(kind); !ok {
		warnings = append(warnings, fmt.Sprintf("%s item '%s' has type '%s', expected income or expense - it will be ignored",
			calculator, label, kind))
	}
	if _, ok := cashflow.ParsePeriod(period); !ok {
		warnings = append(warnings, fmt.Sprintf("%s item '%s' has time period '%s' - treating it as monthly",
			calculator, label, period))
	}
	return warnings
}

// ValidateDisplayPeriod warns when the budget display period is not recognized.
func ValidateDisplayPeriod(period string) string {
	if _, ok := cashflow.ParsePeriod(period); !ok {
		return fmt.Sprintf("Budget display period '%s' is not one of monthly, quarterly, yearly - using monthly", period)
	}
	return ""
}
