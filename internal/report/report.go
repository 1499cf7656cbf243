// Package report runs the calculators over a configuration and collects
// their results for rendering.
package report

import (
	"fmt"

	"github.com/iwvelando/realty-calc/internal/config"
	"github.com/iwvelando/realty-calc/pkg/cashflow"
	"github.com/iwvelando/realty-calc/pkg/datetime"
	"github.com/iwvelando/realty-calc/pkg/loans"
	"github.com/iwvelando/realty-calc/pkg/proceeds"
	"go.uber.org/zap"
)

// Section names a calculator that can be run on its own.
type Section string

const (
	SectionMortgage Section = "mortgage"
	SectionBuySell  Section = "buysell"
	SectionBudget   Section = "budget"
	SectionCashflow Section = "cashflow"
)

// AllSections lists every calculator in display order.
var AllSections = []Section{SectionMortgage, SectionBuySell, SectionBudget, SectionCashflow}

// Mortgage holds everything the mortgage calculator displays. Payment and
// InterestPerPeriod are nil when the loan cannot be computed.
type Mortgage struct {
	PaymentFrequency  string             `yaml:"paymentFrequency"`
	Payment           *float64           `yaml:"payment"`
	InterestPerPeriod *float64           `yaml:"interestPerPeriod"`
	HasExtraPayments  bool               `yaml:"hasExtraPayments"`
	Chart             loans.PayoffSeries `yaml:"chart"`
	Breakdown         []loans.Slice      `yaml:"breakdown"`
	Summary           *loans.Summary     `yaml:"summary,omitempty"`
	PayoffDate        string             `yaml:"payoffDate,omitempty"`
}

// Report collects the results of the calculators that were run.
type Report struct {
	Mortgage *Mortgage                `yaml:"mortgage,omitempty"`
	BuySell  *proceeds.Result         `yaml:"buySell,omitempty"`
	Budget   *cashflow.BudgetResult   `yaml:"budget,omitempty"`
	Cashflow *cashflow.CashflowResult `yaml:"cashflow,omitempty"`
}

// Build runs the requested calculators. An empty section list runs all of them.
func Build(logger *zap.Logger, conf config.Configuration, sections ...Section) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(sections) == 0 {
		sections = AllSections
	}

	var result Report
	for _, section := range sections {
		switch section {
		case SectionMortgage:
			mortgage, err := BuildMortgage(logger, conf.Mortgage)
			if err != nil {
				return result, err
			}
			result.Mortgage = &mortgage
		case SectionBuySell:
			calculated := proceeds.Calculate(conf.BuySell.ToSellInputs(), conf.BuySell.ToBuyInputs())
			result.BuySell = &calculated
		case SectionBudget:
			budget := cashflow.Budget(conf.Budget.ToItems(), conf.Budget.ToDisplayPeriod())
			result.Budget = &budget
		case SectionCashflow:
			flows := cashflow.Cashflow(conf.Cashflow.ToItems())
			result.Cashflow = &flows
		default:
			return result, fmt.Errorf("unknown section %q", section)
		}
		logger.Debug(fmt.Sprintf("computed %s section", section),
			zap.String("op", "report.Build"),
		)
	}
	return result, nil
}

// BuildMortgage runs the mortgage calculator. When extra payments are set the
// chart is the accelerated series and a payoff summary is attached, dated
// from StartDate when one is configured.
func BuildMortgage(logger *zap.Logger, m config.MortgageConfig) (Mortgage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	params := m.ToLoanParameters()
	extra := m.ToExtraPayment()

	result := Mortgage{
		PaymentFrequency: params.PaymentFrequency.Label(),
		HasExtraPayments: loans.HasExtraPayments(extra),
		Breakdown:        loans.BreakdownTotals(params, extra).Slices(),
	}
	if payment, ok := loans.PeriodicPayment(params); ok {
		result.Payment = &payment
	}
	if interest, ok := loans.InterestPerPeriod(params); ok {
		result.InterestPerPeriod = &interest
	}

	if !result.HasExtraPayments {
		result.Chart = loans.StandardPayoffSeries(params)
		return result, nil
	}

	series, summary := loans.NewAcceleratedScheduleGenerator(logger).Generate(params, extra)
	result.Chart = series
	if len(series) == 0 {
		return result, nil
	}
	result.Summary = &summary

	if m.StartDate != "" && summary.PaidOff {
		if err := datetime.ValidateDate(m.StartDate); err != nil {
			logger.Debug("ignoring invalid mortgage start date",
				zap.String("op", "report.BuildMortgage"),
				zap.Error(err),
			)
			return result, nil
		}
		payoff, err := datetime.PaymentMonth(m.StartDate, summary.MonthsSimulated)
		if err != nil {
			return result, fmt.Errorf("failed to compute payoff date: %w", err)
		}
		result.PayoffDate = payoff
	}
	return result, nil
}
