// Package cashflow totals income and expense items for the budget and
// cashflow calculators.
package cashflow

import (
	"strings"

	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Kind says whether an item brings money in or takes it out.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Period is how often a budget item recurs.
type Period string

const (
	Monthly   Period = "monthly"
	Quarterly Period = "quarterly"
	Yearly    Period = "yearly"
	Annual    Period = "annual"
)

// Item is a single income or expense line.
type Item struct {
	Name   string
	Amount float64
	Kind   Kind
	Period Period
}

// Slice is a labelled value of a pie chart.
type Slice struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// BudgetResult holds budget totals scaled to the display period. Pie slices
// always use monthly values.
type BudgetResult struct {
	DisplayPeriod   Period  `yaml:"displayPeriod"`
	Income          float64 `yaml:"income"`
	Expenses        float64 `yaml:"expenses"`
	Net             float64 `yaml:"net"`
	MonthlyIncome   float64 `yaml:"monthlyIncome"`
	MonthlyExpenses float64 `yaml:"monthlyExpenses"`
	Slices          []Slice `yaml:"slices"`
}

// CashflowResult holds plain totals of the cashflow items.
type CashflowResult struct {
	Income   float64 `yaml:"income"`
	Expenses float64 `yaml:"expenses"`
	Net      float64 `yaml:"net"`
	Slices   []Slice `yaml:"slices"`
}

// ParseKind converts a configuration value into a Kind.
func ParseKind(value string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case Income:
		return Income, true
	case Expense:
		return Expense, true
	default:
		return "", false
	}
}

// ParsePeriod converts a configuration value into a Period. Unknown values
// fall back to Monthly and report false.
func ParsePeriod(value string) (Period, bool) {
	switch p := Period(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return Monthly, true
	case Monthly, Quarterly, Yearly, Annual:
		return p, true
	default:
		return Monthly, false
	}
}

// ToMonthly converts an amount recurring every period into its monthly
// equivalent.
func ToMonthly(amount float64, period Period) float64 {
	if !mathutil.IsFinite(amount) {
		return 0
	}
	return toMonthly(decimal.NewFromFloat(amount), period).InexactFloat64()
}

// FromMonthly scales a monthly amount to the given display period.
func FromMonthly(monthly float64, period Period) float64 {
	if !mathutil.IsFinite(monthly) {
		return 0
	}
	return fromMonthly(decimal.NewFromFloat(monthly), period).InexactFloat64()
}

func toMonthly(amount decimal.Decimal, period Period) decimal.Decimal {
	switch period {
	case Yearly, Annual:
		return amount.Div(decimal.NewFromInt(constants.MonthsPerYear))
	case Quarterly:
		return amount.Div(decimal.NewFromInt(constants.MonthsPerQuarter))
	default:
		return amount
	}
}

func fromMonthly(amount decimal.Decimal, period Period) decimal.Decimal {
	switch period {
	case Quarterly:
		return amount.Mul(decimal.NewFromInt(constants.MonthsPerQuarter))
	case Yearly, Annual:
		return amount.Mul(decimal.NewFromInt(constants.MonthsPerYear))
	default:
		return amount
	}
}

// totals sums income and expenses, converting each item with convert.
func totals(items []Item, convert func(decimal.Decimal, Period) decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	income, expenses := decimal.Zero, decimal.Zero
	for _, item := range items {
		amount := convert(decimal.NewFromFloat(mathutil.NonNegative(item.Amount)), item.Period)
		switch item.Kind {
		case Income:
			income = income.Add(amount)
		case Expense:
			expenses = expenses.Add(amount)
		}
	}
	return income, expenses
}

// Budget converts every item to a monthly amount, totals income and expenses,
// and scales the totals to the display period.
func Budget(items []Item, display Period) BudgetResult {
	if display == "" {
		display = Monthly
	}
	income, expenses := totals(items, toMonthly)
	net := income.Sub(expenses)

	return BudgetResult{
		DisplayPeriod:   display,
		Income:          fromMonthly(income, display).InexactFloat64(),
		Expenses:        fromMonthly(expenses, display).InexactFloat64(),
		Net:             fromMonthly(net, display).InexactFloat64(),
		MonthlyIncome:   income.InexactFloat64(),
		MonthlyExpenses: expenses.InexactFloat64(),
		Slices: []Slice{
			{Label: "income", Value: income.InexactFloat64()},
			{Label: "expenses", Value: expenses.InexactFloat64()},
		},
	}
}

// Cashflow totals the items as entered, ignoring their period. A surplus or
// loss slice is added to the pie when income and expenses differ.
func Cashflow(items []Item) CashflowResult {
	income, expenses := totals(items, func(amount decimal.Decimal, _ Period) decimal.Decimal { return amount })
	net := income.Sub(expenses)

	result := CashflowResult{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Net:      net.InexactFloat64(),
		Slices: []Slice{
			{Label: "Income", Value: income.InexactFloat64()},
			{Label: "Expenses", Value: expenses.InexactFloat64()},
		},
	}
	switch {
	case net.IsPositive():
		result.Slices = append(result.Slices, Slice{Label: "Net Cashflow", Value: net.InexactFloat64()})
	case net.IsNegative():
		result.Slices = append(result.Slices, Slice{Label: "Net Loss", Value: net.Abs().InexactFloat64()})
	}
	return result
}
