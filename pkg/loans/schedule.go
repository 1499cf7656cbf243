package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/mathutil"
	"go.uber.org/zap"
)

// Summary describes how an accelerated simulation ended.
type Summary struct {
	MonthsSimulated   int     `yaml:"monthsSimulated"`
	PaidOff           bool    `yaml:"paidOff"`
	Truncated         bool    `yaml:"truncated"`
	MonthlyPayment    float64 `yaml:"monthlyPayment"`
	InterestPaid      float64 `yaml:"interestPaid"`
	ExtraContribution float64 `yaml:"extraContribution"`
	RemainingBalance  float64 `yaml:"remainingBalance"`
}

// AcceleratedScheduleGenerator simulates a loan month by month with extra
// principal payments applied.
type AcceleratedScheduleGenerator struct {
	logger *zap.Logger
}

// NewAcceleratedScheduleGenerator creates a new generator instance
func NewAcceleratedScheduleGenerator(logger *zap.Logger) *AcceleratedScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcceleratedScheduleGenerator{logger: logger}
}

var defaultGenerator = NewAcceleratedScheduleGenerator(nil)

// AcceleratedPayoffSeries simulates the loan month by month at monthly
// periodicity, whatever the loan's payment frequency, and returns the balance
// at the end of each year or at payoff.
func AcceleratedPayoffSeries(params LoanParameters, extra ExtraPayment) PayoffSeries {
	series, _ := defaultGenerator.Generate(params, extra)
	return series
}

// PayoffSummary runs the same simulation as AcceleratedPayoffSeries and
// returns how it ended.
func PayoffSummary(params LoanParameters, extra ExtraPayment) Summary {
	_, summary := defaultGenerator.Generate(params, extra)
	return summary
}

// MonthlyRecurringContribution converts a recurring extra payment into its
// monthly equivalent.
func MonthlyRecurringContribution(extra ExtraPayment) float64 {
	amount := mathutil.NonNegative(extra.RecurringAmount)
	if amount == 0 {
		return 0
	}
	return amount * (float64(extra.RecurringFrequency.PeriodsPerYear()) / constants.MonthsPerYear)
}

// Generate runs the accelerated payoff simulation. The simulation stops when
// the balance reaches zero or after twice the nominal number of months,
// whichever comes first.
func (g *AcceleratedScheduleGenerator) Generate(params LoanParameters, extra ExtraPayment) (PayoffSeries, Summary) {
	var summary Summary
	if !params.charted() {
		return nil, summary
	}

	nominalMonths := params.AmortizationYears * constants.MonthsPerYear
	maxMonths := nominalMonths * constants.SimulationCapMultiplier
	monthlyRate := params.AnnualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
	monthlyPayment := annuityPayment(params.Principal, monthlyRate, nominalMonths)
	if !mathutil.IsFinite(monthlyPayment) {
		return nil, summary
	}
	recurring := MonthlyRecurringContribution(extra)
	oneTime := mathutil.NonNegative(extra.OneTimeAmount)

	summary.MonthlyPayment = monthlyPayment
	series := make(PayoffSeries, 0, params.AmortizationYears)
	balance := params.Principal

	for elapsed := 0; elapsed < maxMonths && balance > 0; elapsed++ {
		year := elapsed/constants.MonthsPerYear + 1
		month := elapsed%constants.MonthsPerYear + 1

		payment := monthlyPayment + recurring
		extraThisMonth := recurring
		if oneTime > 0 && extra.OneTimeYear == year && month == 1 {
			g.logger.Debug(fmt.Sprintf("year %d: applying one-time extra principal payment %.2f", year, oneTime),
				zap.String("op", "loans.Generate"),
			)
			payment += oneTime
			extraThisMonth += oneTime
		}

		interest := balance * monthlyRate
		principalPaid := payment - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		if principalPaid < 0 {
			principalPaid = 0
		}
		balance -= principalPaid
		// We will get machine error otherwise so just set to 0.
		if settled(balance, params.Principal) {
			balance = 0
		}

		summary.MonthsSimulated++
		summary.InterestPaid += interest
		// Extra payments only count for the principal they actually retired.
		summary.ExtraContribution += math.Min(extraThisMonth, math.Max(0, principalPaid-(monthlyPayment-interest)))

		if month == constants.MonthsPerYear || balance == 0 {
			series = append(series, BalancePoint{Year: year, RemainingBalance: balance})
		}
	}

	summary.RemainingBalance = balance
	summary.PaidOff = balance == 0
	if !summary.PaidOff {
		// The payment covers little more than the interest.
		summary.Truncated = true
		g.logger.Debug(fmt.Sprintf("simulation stopped after %d months with %.2f outstanding", maxMonths, balance),
			zap.String("op", "loans.Generate"),
		)
	} else if summary.MonthsSimulated < nominalMonths {
		g.logger.Debug(fmt.Sprintf("loan paid off after %d of %d months", summary.MonthsSimulated, nominalMonths),
			zap.String("op", "loans.Generate"),
		)
	}

	return series, summary
}
