package config

import (
	"github.com/iwvelando/realty-calc/pkg/cashflow"
	"github.com/iwvelando/realty-calc/pkg/format"
	"github.com/iwvelando/realty-calc/pkg/loans"
	"github.com/iwvelando/realty-calc/pkg/proceeds"
)

// ToLoanParameters converts the mortgage section into engine inputs. Unknown
// labels fall back to a monthly frequency and a 25 year amortization.
func (m MortgageConfig) ToLoanParameters() loans.LoanParameters {
	frequency, _ := loans.ParseFrequency(m.PaymentFrequency)
	years, _ := loans.ParseAmortization(m.Amortization)
	return loans.LoanParameters{
		Principal:         format.ParseAmount(m.Amount),
		AnnualRatePercent: format.ParseAmount(m.InterestRate),
		AmortizationYears: years,
		PaymentFrequency:  frequency,
	}
}

// ToExtraPayment converts the extra payment settings into engine inputs.
func (m MortgageConfig) ToExtraPayment() loans.ExtraPayment {
	frequency, _ := loans.ParseFrequency(m.ExtraRecurringPayment.Frequency)
	return loans.ExtraPayment{
		RecurringAmount:    format.ParseAmount(m.ExtraRecurringPayment.Amount),
		RecurringFrequency: frequency,
		OneTimeAmount:      format.ParseAmount(m.ExtraOneTimePayment.Amount),
		OneTimeYear:        format.ParseWhole(m.ExtraOneTimePayment.Year),
	}
}

// ToSellInputs converts the sale section into calculator inputs.
func (b BuySellConfig) ToSellInputs() proceeds.SellInputs {
	return proceeds.SellInputs{
		Price:             format.ParseAmount(b.Sell.Price),
		MortgageBalance:   format.ParseAmount(b.Sell.MortgageBalance),
		RealtorFeePercent: format.ParseAmount(b.Sell.RealtorFeePercent),
		LegalFees:         format.ParseAmount(b.Sell.LegalFees),
		OtherCosts:        format.ParseAmount(b.Sell.OtherCosts),
	}
}

// ToBuyInputs converts the purchase section into calculator inputs.
func (b BuySellConfig) ToBuyInputs() proceeds.BuyInputs {
	useSellProceeds := true
	if b.Buy.UseSellProceeds != nil {
		useSellProceeds = *b.Buy.UseSellProceeds
	}
	return proceeds.BuyInputs{
		Price:             format.ParseAmount(b.Buy.Price),
		DownPayment:       format.ParseAmount(b.Buy.DownPayment),
		UseSellProceeds:   useSellProceeds,
		RatePercent:       format.ParseAmount(b.Buy.MortgageRate),
		AmortizationYears: format.ParseWhole(b.Buy.Amortization),
		ClosingCosts:      format.ParseAmount(b.Buy.ClosingCosts),
	}
}

// ToItem converts a configured line into a calculator item. Items with an
// unknown type are kept but count toward neither total.
func (i ItemConfig) ToItem() cashflow.Item {
	kind, _ := cashflow.ParseKind(i.Type)
	period, _ := cashflow.ParsePeriod(i.TimePeriod)
	return cashflow.Item{
		Name:   i.Name,
		Amount: format.ParseAmount(i.Amount),
		Kind:   kind,
		Period: period,
	}
}

func toItems(configs []ItemConfig) []cashflow.Item {
	items := make([]cashflow.Item, 0, len(configs))
	for _, item := range configs {
		items = append(items, item.ToItem())
	}
	return items
}

// ToItems converts the budget lines.
func (b BudgetConfig) ToItems() []cashflow.Item {
	return toItems(b.Items)
}

// ToDisplayPeriod returns the period budget totals are shown in.
func (b BudgetConfig) ToDisplayPeriod() cashflow.Period {
	period, _ := cashflow.ParsePeriod(b.DisplayPeriod)
	return period
}

// ToItems converts the cashflow lines.
func (c CashflowConfig) ToItems() []cashflow.Item {
	return toItems(c.Items)
}
