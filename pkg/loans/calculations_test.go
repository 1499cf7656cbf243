package loans

import (
	"math"
	"testing"
)

func TestPeriodicPayment(t *testing.T) {
	tests := []struct {
		name          string
		params        LoanParameters
		expectedOK    bool
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "25-year monthly mortgage",
			params:        LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 25, PaymentFrequency: Monthly},
			expectedOK:    true,
			expectedRange: []float64{541.73, 541.75}, // Around $541.74
		},
		{
			name:          "25-year bi-weekly mortgage",
			params:        LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 25, PaymentFrequency: Biweekly},
			expectedOK:    true,
			expectedRange: []float64{249.89, 249.91}, // Around $249.90
		},
		{
			name:          "25-year weekly mortgage",
			params:        LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 25, PaymentFrequency: Weekly},
			expectedOK:    true,
			expectedRange: []float64{124.91, 124.93}, // Around $124.92
		},
		{
			name:          "Standard 30-year mortgage",
			params:        LoanParameters{Principal: 240000, AnnualRatePercent: 6.0, AmortizationYears: 30},
			expectedOK:    true,
			expectedRange: []float64{1438, 1440}, // Around $1439
		},
		{
			name:       "Zero principal",
			params:     LoanParameters{Principal: 0, AnnualRatePercent: 4.25, AmortizationYears: 25},
			expectedOK: false,
		},
		{
			name:       "Zero amortization",
			params:     LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 0},
			expectedOK: false,
		},
		{
			name:       "Negative principal",
			params:     LoanParameters{Principal: -100000, AnnualRatePercent: 4.25, AmortizationYears: 25},
			expectedOK: false,
		},
		{
			name:       "Negative rate",
			params:     LoanParameters{Principal: 100000, AnnualRatePercent: -1, AmortizationYears: 25},
			expectedOK: false,
		},
		{
			name:       "NaN principal",
			params:     LoanParameters{Principal: math.NaN(), AnnualRatePercent: 4.25, AmortizationYears: 25},
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := PeriodicPayment(tt.params)
			if ok != tt.expectedOK {
				t.Fatalf("PeriodicPayment() ok = %v, expected %v", ok, tt.expectedOK)
			}
			if !ok {
				if result != 0 {
					t.Errorf("PeriodicPayment() = %.2f for an undefined payment, expected 0", result)
				}
				return
			}
			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("PeriodicPayment() = %.4f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestPeriodicPaymentZeroInterest(t *testing.T) {
	for _, freq := range []Frequency{Monthly, Biweekly, Weekly} {
		for _, years := range []int{5, 10, 15, 20, 25, 30} {
			params := LoanParameters{Principal: 123456, AnnualRatePercent: 0, AmortizationYears: years, PaymentFrequency: freq}
			result, ok := PeriodicPayment(params)
			if !ok {
				t.Fatalf("PeriodicPayment(%+v) returned undefined", params)
			}
			expected := 123456 / float64(years*freq.PeriodsPerYear())
			if result != expected {
				t.Errorf("PeriodicPayment(%+v) = %v, expected exactly %v", params, result, expected)
			}
		}
	}
}

func TestPeriodicPaymentHighRate(t *testing.T) {
	// (1+i)^n overflows at this rate; the payment tends to principal * i.
	params := LoanParameters{Principal: 100000, AnnualRatePercent: 10000, AmortizationYears: 30, PaymentFrequency: Monthly}
	payment, ok := PeriodicPayment(params)
	if !ok {
		t.Fatal("PeriodicPayment() returned undefined for a finite rate")
	}
	if math.IsNaN(payment) || payment < 0 {
		t.Fatalf("PeriodicPayment() = %v, expected a non-negative number", payment)
	}
	expected := 100000 * (10000.0 / 100 / 12)
	if math.Abs(payment-expected) > 0.01 {
		t.Errorf("PeriodicPayment() = %.2f, expected %.2f", payment, expected)
	}

	params.AnnualRatePercent = math.MaxFloat64
	if payment, ok := PeriodicPayment(params); ok {
		t.Errorf("PeriodicPayment() = %v, expected undefined when the payment overflows", payment)
	}
	if interest, ok := InterestPerPeriod(params); ok {
		t.Errorf("InterestPerPeriod() = %v, expected undefined when the interest overflows", interest)
	}
}

func TestAmortizationTermBounds(t *testing.T) {
	extra := ExtraPayment{RecurringAmount: 100}
	for _, years := range []int{101, 1 << 40, 1 << 62} {
		params := LoanParameters{Principal: 100000, AnnualRatePercent: 4, AmortizationYears: years}

		if _, ok := PeriodicPayment(params); ok {
			t.Errorf("years=%d: PeriodicPayment() should be undefined", years)
		}
		if series := StandardPayoffSeries(params); len(series) != 0 {
			t.Errorf("years=%d: StandardPayoffSeries() returned %d points, expected none", years, len(series))
		}
		if series := AcceleratedPayoffSeries(params, extra); len(series) != 0 {
			t.Errorf("years=%d: AcceleratedPayoffSeries() returned %d points, expected none", years, len(series))
		}
		if result := BreakdownTotals(params, extra); result != (Breakdown{}) {
			t.Errorf("years=%d: BreakdownTotals() = %+v, expected zero totals", years, result)
		}
	}

	params := LoanParameters{Principal: 100000, AnnualRatePercent: 4, AmortizationYears: 100}
	if _, ok := PeriodicPayment(params); !ok {
		t.Error("a 100 year term should still be computed")
	}
	if series := StandardPayoffSeries(params); len(series) != 100 {
		t.Errorf("StandardPayoffSeries() returned %d points, expected 100", len(series))
	}
}

func TestPeriodicPaymentRepaysLoan(t *testing.T) {
	params := LoanParameters{Principal: 175000, AnnualRatePercent: 4.5, AmortizationYears: 30}
	payment, ok := PeriodicPayment(params)
	if !ok {
		t.Fatal("PeriodicPayment() returned undefined")
	}

	balance := params.Principal
	totalInterest := 0.0
	for month := 0; month < 360; month++ {
		interest := balance * 0.045 / 12
		totalInterest += interest
		balance -= payment - interest
	}
	if math.Abs(balance) > 0.01 {
		t.Errorf("balance after 360 payments = %.4f, expected 0", balance)
	}
	if math.Abs(payment*360-(params.Principal+totalInterest)) > 0.01 {
		t.Errorf("payment * n = %.2f, expected principal + interest = %.2f", payment*360, params.Principal+totalInterest)
	}
}

func TestInterestPerPeriod(t *testing.T) {
	tests := []struct {
		name       string
		params     LoanParameters
		expected   float64
		expectedOK bool
	}{
		{"Monthly", LoanParameters{Principal: 120000, AnnualRatePercent: 5, AmortizationYears: 25}, 500, true},
		{"Weekly", LoanParameters{Principal: 52000, AnnualRatePercent: 10, AmortizationYears: 25, PaymentFrequency: Weekly}, 100, true},
		{"Zero rate", LoanParameters{Principal: 120000, AnnualRatePercent: 0, AmortizationYears: 25}, 0, false},
		{"Zero principal", LoanParameters{Principal: 0, AnnualRatePercent: 5, AmortizationYears: 25}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := InterestPerPeriod(tt.params)
			if ok != tt.expectedOK {
				t.Fatalf("InterestPerPeriod() ok = %v, expected %v", ok, tt.expectedOK)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("InterestPerPeriod() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestStandardPayoffSeries(t *testing.T) {
	series := StandardPayoffSeries(LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 5})

	expected := []float64{80000, 60000, 40000, 20000, 0}
	if len(series) != len(expected) {
		t.Fatalf("StandardPayoffSeries() returned %d points, expected %d", len(series), len(expected))
	}
	for i, point := range series {
		if point.Year != i+1 {
			t.Errorf("point %d year = %d, expected %d", i, point.Year, i+1)
		}
		if point.RemainingBalance != expected[i] {
			t.Errorf("year %d balance = %v, expected %v", point.Year, point.RemainingBalance, expected[i])
		}
	}
}

func TestStandardPayoffSeriesIsLinear(t *testing.T) {
	// The series is a straight line regardless of the rate.
	lowRate := StandardPayoffSeries(LoanParameters{Principal: 300000, AnnualRatePercent: 1, AmortizationYears: 30})
	highRate := StandardPayoffSeries(LoanParameters{Principal: 300000, AnnualRatePercent: 9, AmortizationYears: 30})
	if len(lowRate) != 30 || len(highRate) != 30 {
		t.Fatalf("expected 30 points, got %d and %d", len(lowRate), len(highRate))
	}
	for i := range lowRate {
		expected := 300000 - 10000*float64(i+1)
		if math.Abs(lowRate[i].RemainingBalance-expected) > 0.01 {
			t.Errorf("year %d balance = %.2f, expected %.2f", i+1, lowRate[i].RemainingBalance, expected)
		}
		if lowRate[i] != highRate[i] {
			t.Errorf("year %d differs between rates: %+v vs %+v", i+1, lowRate[i], highRate[i])
		}
	}
	if lowRate.Final().RemainingBalance != 0 {
		t.Errorf("final balance = %v, expected 0", lowRate.Final().RemainingBalance)
	}
}

func TestStandardPayoffSeriesUnevenDivision(t *testing.T) {
	series := StandardPayoffSeries(LoanParameters{Principal: 100000, AnnualRatePercent: 3, AmortizationYears: 15})
	if len(series) != 15 {
		t.Fatalf("StandardPayoffSeries() returned %d points, expected 15", len(series))
	}
	if series.Final().RemainingBalance != 0 {
		t.Errorf("final balance = %v, expected exactly 0", series.Final().RemainingBalance)
	}
}

func TestStandardPayoffSeriesSmallPrincipal(t *testing.T) {
	series := StandardPayoffSeries(LoanParameters{Principal: 0.01, AnnualRatePercent: 4, AmortizationYears: 5})

	expected := []float64{0.008, 0.006, 0.004, 0.002, 0}
	if len(series) != len(expected) {
		t.Fatalf("StandardPayoffSeries() returned %d points, expected %d", len(series), len(expected))
	}
	for i, want := range expected {
		if math.Abs(series[i].RemainingBalance-want) > 1e-12 {
			t.Errorf("year %d balance = %v, expected %v", i+1, series[i].RemainingBalance, want)
		}
	}
}

func TestStandardPayoffSeriesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		params LoanParameters
	}{
		{"Zero principal", LoanParameters{Principal: 0, AnnualRatePercent: 4, AmortizationYears: 25}},
		{"Zero term", LoanParameters{Principal: 100000, AnnualRatePercent: 4, AmortizationYears: 0}},
		{"Negative term", LoanParameters{Principal: 100000, AnnualRatePercent: 4, AmortizationYears: -5}},
		{"Zero rate", LoanParameters{Principal: 100000, AnnualRatePercent: 0, AmortizationYears: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if series := StandardPayoffSeries(tt.params); len(series) != 0 {
				t.Errorf("StandardPayoffSeries() returned %d points, expected none", len(series))
			}
		})
	}
}

func TestBreakdownTotals(t *testing.T) {
	params := LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 25}

	tests := []struct {
		name          string
		extra         ExtraPayment
		expectedExtra float64
	}{
		{"No extra payments", ExtraPayment{}, 0},
		{"Monthly recurring", ExtraPayment{RecurringAmount: 100, RecurringFrequency: Monthly}, 30000},
		{"Bi-weekly recurring counted at its own frequency", ExtraPayment{RecurringAmount: 100, RecurringFrequency: Biweekly}, 65000},
		{"Weekly recurring", ExtraPayment{RecurringAmount: 10, RecurringFrequency: Weekly}, 13000},
		{"One-time within term", ExtraPayment{OneTimeAmount: 5000, OneTimeYear: 3}, 5000},
		{"One-time in final year", ExtraPayment{OneTimeAmount: 5000, OneTimeYear: 25}, 5000},
		{"One-time beyond term is ignored", ExtraPayment{OneTimeAmount: 5000, OneTimeYear: 26}, 0},
		{"One-time without a year is ignored", ExtraPayment{OneTimeAmount: 5000}, 0},
		{"Negative recurring is ignored", ExtraPayment{RecurringAmount: -100}, 0},
		{"Both kinds", ExtraPayment{RecurringAmount: 100, RecurringFrequency: Biweekly, OneTimeAmount: 5000, OneTimeYear: 3}, 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BreakdownTotals(params, tt.extra)
			if result.PrincipalPaid != 100000 {
				t.Errorf("PrincipalPaid = %v, expected 100000", result.PrincipalPaid)
			}
			if math.Abs(result.InterestPaid-106250) > 1e-6 {
				t.Errorf("InterestPaid = %v, expected 106250", result.InterestPaid)
			}
			if result.RemainingPrincipal != 0 {
				t.Errorf("RemainingPrincipal = %v, expected 0", result.RemainingPrincipal)
			}
			if math.Abs(result.ExtraPrincipalPaid-tt.expectedExtra) > 1e-6 {
				t.Errorf("ExtraPrincipalPaid = %v, expected %v", result.ExtraPrincipalPaid, tt.expectedExtra)
			}
		})
	}
}

func TestBreakdownTotalsInvalid(t *testing.T) {
	extra := ExtraPayment{RecurringAmount: 100, OneTimeAmount: 5000, OneTimeYear: 1}
	for _, params := range []LoanParameters{
		{Principal: 0, AnnualRatePercent: 4, AmortizationYears: 25},
		{Principal: 100000, AnnualRatePercent: 4, AmortizationYears: 0},
		{Principal: 100000, AnnualRatePercent: 0, AmortizationYears: 5},
	} {
		if result := BreakdownTotals(params, extra); result != (Breakdown{}) {
			t.Errorf("BreakdownTotals(%+v) = %+v, expected zero totals", params, result)
		}
	}
}

func TestBreakdownSlices(t *testing.T) {
	plain := Breakdown{PrincipalPaid: 100000, InterestPaid: 106250}
	slices := plain.Slices()
	if len(slices) != 3 {
		t.Fatalf("Slices() returned %d slices, expected 3", len(slices))
	}
	for _, slice := range slices {
		if slice.Label == "Extra Principal Paid" {
			t.Error("Slices() included an extra principal slice without extra payments")
		}
	}

	withExtra := Breakdown{PrincipalPaid: 100000, ExtraPrincipalPaid: 30000, InterestPaid: 106250}
	slices = withExtra.Slices()
	if len(slices) != 4 {
		t.Fatalf("Slices() returned %d slices, expected 4", len(slices))
	}
	if slices[1].Label != "Extra Principal Paid" || slices[1].Value != 30000 {
		t.Errorf("second slice = %+v, expected extra principal of 30000", slices[1])
	}
}

func TestBreakdownDiffersFromSimulation(t *testing.T) {
	// The pie counts bi-weekly extras 26 times a year while the simulation
	// spreads them over twelve monthly contributions; both are kept.
	params := LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 25}
	extra := ExtraPayment{RecurringAmount: 100, RecurringFrequency: Biweekly}

	breakdown := BreakdownTotals(params, extra)
	summary := PayoffSummary(params, extra)

	if breakdown.ExtraPrincipalPaid <= summary.ExtraContribution {
		t.Errorf("breakdown extra %.2f expected to exceed simulated extra %.2f",
			breakdown.ExtraPrincipalPaid, summary.ExtraContribution)
	}
}

func TestHasExtraPayments(t *testing.T) {
	tests := []struct {
		name     string
		extra    ExtraPayment
		expected bool
	}{
		{"None", ExtraPayment{}, false},
		{"Recurring", ExtraPayment{RecurringAmount: 50}, true},
		{"One-time with year", ExtraPayment{OneTimeAmount: 1000, OneTimeYear: 2}, true},
		{"One-time without year", ExtraPayment{OneTimeAmount: 1000}, false},
		{"Year without amount", ExtraPayment{OneTimeYear: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := HasExtraPayments(tt.extra); result != tt.expected {
				t.Errorf("HasExtraPayments(%+v) = %v, expected %v", tt.extra, result, tt.expected)
			}
		})
	}
}

func TestPayoffChart(t *testing.T) {
	params := LoanParameters{Principal: 100000, AnnualRatePercent: 4.25, AmortizationYears: 5}

	standard := PayoffChart(params, ExtraPayment{})
	if balance, _ := standard.Balance(1); balance != 80000 {
		t.Errorf("chart without extras year 1 = %v, expected the linear 80000", balance)
	}

	accelerated := PayoffChart(params, ExtraPayment{RecurringAmount: 100})
	expected := AcceleratedPayoffSeries(params, ExtraPayment{RecurringAmount: 100})
	if len(accelerated) != len(expected) {
		t.Fatalf("chart with extras has %d points, expected %d", len(accelerated), len(expected))
	}
	for i := range accelerated {
		if accelerated[i] != expected[i] {
			t.Errorf("chart point %d = %+v, expected %+v", i, accelerated[i], expected[i])
		}
	}
}

func TestPayoffSeriesBalance(t *testing.T) {
	series := PayoffSeries{{Year: 1, RemainingBalance: 10}, {Year: 2, RemainingBalance: 0}}

	if balance, ok := series.Balance(2); !ok || balance != 0 {
		t.Errorf("Balance(2) = %v, %v, expected 0, true", balance, ok)
	}
	if _, ok := series.Balance(3); ok {
		t.Error("Balance(3) reported a point that does not exist")
	}
	if final := (PayoffSeries{}).Final(); final != (BalancePoint{}) {
		t.Errorf("Final() of empty series = %+v, expected zero point", final)
	}
}
