package config

import (
	"github.com/iwvelando/realty-calc/pkg/format"
	"github.com/iwvelando/realty-calc/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. None of them stop the calculators from running.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	add := func(warning string) {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if format.ParseAmount(c.Mortgage.Amount) <= 0 {
		add("Mortgage amount is missing or zero - the payment cannot be computed")
	}
	add(validation.ValidateAmortization("Mortgage amortization", c.Mortgage.Amortization))
	add(validation.ValidateFrequency("Mortgage payment frequency", c.Mortgage.PaymentFrequency))
	add(validation.ValidateFrequency("Extra recurring payment frequency", c.Mortgage.ExtraRecurringPayment.Frequency))
	add(validation.ValidateStartDate(c.Mortgage.StartDate))

	params := c.Mortgage.ToLoanParameters()
	extra := c.Mortgage.ToExtraPayment()
	add(validation.ValidateOneTimePayment(extra.OneTimeAmount, extra.OneTimeYear, params.AmortizationYears))

	add(validation.ValidateDisplayPeriod(c.Budget.DisplayPeriod))
	for _, item := range c.Budget.Items {
		warnings = append(warnings, validation.ValidateItem("Budget", item.Name, item.Type, item.TimePeriod)...)
	}
	for _, item := range c.Cashflow.Items {
		warnings = append(warnings, validation.ValidateItem("Cashflow", item.Name, item.Type, "")...)
	}

	return warnings
}
