// Package loans provides the mortgage amortization engine: periodic payment
// figures, payoff series for charting, and summary totals.
package loans

import (
	"math"

	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/mathutil"
)

// LoanParameters holds the inputs describing a mortgage.
type LoanParameters struct {
	Principal         float64
	AnnualRatePercent float64
	AmortizationYears int
	PaymentFrequency  Frequency
}

// ExtraPayment describes principal contributions on top of the scheduled
// payment. RecurringFrequency is independent of the loan's own frequency.
type ExtraPayment struct {
	RecurringAmount    float64
	RecurringFrequency Frequency
	OneTimeAmount      float64
	OneTimeYear        int
}

// BalancePoint is the remaining balance at the end of a year of the loan.
type BalancePoint struct {
	Year             int     `yaml:"year"`
	RemainingBalance float64 `yaml:"remainingBalance"`
}

// PayoffSeries is a chronological list of yearly balances.
type PayoffSeries []BalancePoint

// Breakdown holds the simplified totals shown in the payment breakdown pie.
type Breakdown struct {
	PrincipalPaid      float64 `yaml:"principalPaid"`
	ExtraPrincipalPaid float64 `yaml:"extraPrincipalPaid"`
	InterestPaid       float64 `yaml:"interestPaid"`
	RemainingPrincipal float64 `yaml:"remainingPrincipal"`
}

// Slice is a labelled value of a pie chart.
type Slice struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// valid reports whether the loan can be computed at all.
func (p LoanParameters) valid() bool {
	return p.Principal > 0 && mathutil.IsFinite(p.Principal) &&
		p.AmortizationYears > 0 && p.AmortizationYears <= constants.MaxAmortizationYears &&
		p.AnnualRatePercent >= 0 && mathutil.IsFinite(p.AnnualRatePercent)
}

// charted reports whether the payoff series and breakdown are produced. They
// need a positive rate; only the payment figure is defined at zero interest.
func (p LoanParameters) charted() bool {
	return p.valid() && p.AnnualRatePercent > 0
}

// settled reports whether what is left of principal is machine error.
func settled(balance, principal float64) bool {
	return balance < 0 || mathutil.WithinTolerance(balance, 0, principal*constants.SettledBalanceRatio)
}

// annuityPayment returns the fixed payment that repays principal over n
// periods at the given per-period rate.
func annuityPayment(principal, periodRate float64, n int) float64 {
	if periodRate == 0 {
		return principal / float64(n)
	}
	return principal * periodRate / (1 - math.Pow(1+periodRate, -float64(n)))
}

// PeriodicPayment calculates the payment per period at the loan's own payment
// frequency using the standard amortization formula. The boolean is false when
// the payment cannot be computed (non-positive principal or term, negative
// rate, or a result too large to represent), in which case callers display a
// placeholder.
func PeriodicPayment(params LoanParameters) (float64, bool) {
	if !params.valid() {
		return 0, false
	}
	periodsPerYear := params.PaymentFrequency.PeriodsPerYear()
	n := params.AmortizationYears * periodsPerYear
	periodRate := params.AnnualRatePercent / constants.PercentageMultiplier / float64(periodsPerYear)
	payment := annuityPayment(params.Principal, periodRate, n)
	if !mathutil.IsFinite(payment) {
		return 0, false
	}
	return payment, true
}

// InterestPerPeriod calculates the simple interest accrued on the full
// principal over one payment period. The boolean is false when either the
// principal or the rate is zero.
func InterestPerPeriod(params LoanParameters) (float64, bool) {
	if !params.charted() {
		return 0, false
	}
	interest := mathutil.ApplyPercentage(params.Principal, params.AnnualRatePercent) /
		float64(params.PaymentFrequency.PeriodsPerYear())
	if !mathutil.IsFinite(interest) {
		return 0, false
	}
	return interest, true
}

// StandardPayoffSeries produces an illustrative straight-line balance series:
// the principal decreases by principal/years each year. It does not follow the
// amortization curve used by PeriodicPayment. A zero rate yields no series.
func StandardPayoffSeries(params LoanParameters) PayoffSeries {
	if !params.charted() {
		return nil
	}

	yearlyDecrease := params.Principal / float64(params.AmortizationYears)
	balance := params.Principal
	series := make(PayoffSeries, 0, params.AmortizationYears)
	for year := 1; year <= params.AmortizationYears; year++ {
		balance -= yearlyDecrease
		// Clear machine error left over from repeated subtraction.
		if settled(balance, params.Principal) {
			balance = 0
		}
		series = append(series, BalancePoint{Year: year, RemainingBalance: balance})
		if balance == 0 {
			break
		}
	}
	return series
}

// HasExtraPayments reports whether any extra contribution would be applied.
func HasExtraPayments(extra ExtraPayment) bool {
	return extra.RecurringAmount > 0 || (extra.OneTimeAmount > 0 && extra.OneTimeYear > 0)
}

// PayoffChart returns the series shown on the payoff chart: the accelerated
// simulation when extra payments are present, otherwise the standard series.
func PayoffChart(params LoanParameters, extra ExtraPayment) PayoffSeries {
	if HasExtraPayments(extra) {
		return AcceleratedPayoffSeries(params, extra)
	}
	return StandardPayoffSeries(params)
}

// BreakdownTotals returns simplified totals for the payment breakdown.
// Interest is simple interest over the whole term and the loan is assumed to
// be fully repaid. Recurring extra payments are counted at their own
// frequency for every period of the term; this intentionally differs from the
// monthly-normalized contribution used by AcceleratedPayoffSeries. A zero
// rate yields zero totals.
func BreakdownTotals(params LoanParameters, extra ExtraPayment) Breakdown {
	if !params.charted() {
		return Breakdown{}
	}

	years := params.AmortizationYears
	breakdown := Breakdown{
		PrincipalPaid:      params.Principal,
		InterestPaid:       mathutil.ApplyPercentage(params.Principal, params.AnnualRatePercent) * float64(years),
		RemainingPrincipal: 0,
	}

	if recurring := mathutil.NonNegative(extra.RecurringAmount); recurring > 0 {
		periods := years * extra.RecurringFrequency.PeriodsPerYear()
		breakdown.ExtraPrincipalPaid += recurring * float64(periods)
	}
	if oneTime := mathutil.NonNegative(extra.OneTimeAmount); oneTime > 0 && extra.OneTimeYear > 0 && extra.OneTimeYear <= years {
		breakdown.ExtraPrincipalPaid += oneTime
	}

	return breakdown
}

// Slices returns the pie chart slices for the breakdown. The extra principal
// slice is only included when extra principal was paid.
func (b Breakdown) Slices() []Slice {
	slices := []Slice{{Label: "Principal Paid", Value: b.PrincipalPaid}}
	if b.ExtraPrincipalPaid > 0 {
		slices = append(slices, Slice{Label: "Extra Principal Paid", Value: b.ExtraPrincipalPaid})
	}
	return append(slices,
		Slice{Label: "Interest Paid", Value: b.InterestPaid},
		Slice{Label: "Remaining Principal", Value: b.RemainingPrincipal},
	)
}

// Balance returns the remaining balance recorded for year and whether the
// series has a point for that year.
func (s PayoffSeries) Balance(year int) (float64, bool) {
	for _, point := range s {
		if point.Year == year {
			return point.RemainingBalance, true
		}
	}
	return 0, false
}

// Final returns the last point of the series, or a zero point when empty.
func (s PayoffSeries) Final() BalancePoint {
	if len(s) == 0 {
		return BalancePoint{}
	}
	return s[len(s)-1]
}
