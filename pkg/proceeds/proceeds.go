// Package proceeds calculates the net proceeds of selling a home and the
// mortgage needed to buy the next one.
package proceeds

import (
	"github.com/iwvelando/realty-calc/pkg/constants"
	"github.com/iwvelando/realty-calc/pkg/loans"
	"github.com/iwvelando/realty-calc/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// SellInputs holds the figures entered for a sale.
type SellInputs struct {
	Price             float64
	MortgageBalance   float64
	RealtorFeePercent float64
	LegalFees         float64
	OtherCosts        float64
}

// SellResult echoes the sale components along with the net proceeds.
type SellResult struct {
	Price           float64 `yaml:"price"`
	MortgageBalance float64 `yaml:"mortgageBalance"`
	RealtorFee      float64 `yaml:"realtorFee"`
	LegalFees       float64 `yaml:"legalFees"`
	OtherCosts      float64 `yaml:"otherCosts"`
	Net             float64 `yaml:"net"`
}

// BuyInputs holds the figures entered for a purchase.
type BuyInputs struct {
	Price             float64
	DownPayment       float64
	UseSellProceeds   bool
	RatePercent       float64
	AmortizationYears int
	ClosingCosts      float64
}

// BuyResult holds the purchase figures derived from BuyInputs.
type BuyResult struct {
	Price          float64 `yaml:"price"`
	DownPayment    float64 `yaml:"downPayment"`
	Mortgage       float64 `yaml:"mortgage"`
	ClosingCosts   float64 `yaml:"closingCosts"`
	MonthlyPayment float64 `yaml:"monthlyPayment"`
}

// Result combines a sale and the purchase funded by it.
type Result struct {
	Sell SellResult `yaml:"sell"`
	Buy  BuyResult  `yaml:"buy"`
}

func money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(mathutil.NonNegative(value))
}

// SellNet calculates the proceeds of a sale after the mortgage is discharged
// and fees are paid. Net proceeds never go below zero.
func SellNet(in SellInputs) SellResult {
	price := money(in.Price)
	mortgage := money(in.MortgageBalance)
	realtorFee := price.Mul(money(in.RealtorFeePercent)).Div(decimal.NewFromFloat(constants.PercentageMultiplier))
	legal := money(in.LegalFees)
	other := money(in.OtherCosts)

	net := price.Sub(mortgage).Sub(realtorFee).Sub(legal).Sub(other)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return SellResult{
		Price:           price.InexactFloat64(),
		MortgageBalance: mortgage.InexactFloat64(),
		RealtorFee:      realtorFee.InexactFloat64(),
		LegalFees:       legal.InexactFloat64(),
		OtherCosts:      other.InexactFloat64(),
		Net:             net.InexactFloat64(),
	}
}

// Buy calculates the mortgage and monthly payment for a purchase. When
// UseSellProceeds is set the down payment is the net proceeds of the sale
// instead of the entered amount. The down payment is capped at the price.
func Buy(in BuyInputs, sellNet float64) BuyResult {
	price := money(in.Price)
	down := money(in.DownPayment)
	if in.UseSellProceeds {
		down = money(sellNet)
	}
	if down.GreaterThan(price) {
		down = price
	}
	mortgage := price.Sub(down)

	years := in.AmortizationYears
	if years <= 0 {
		years = constants.DefaultAmortizationYears
	}

	result := BuyResult{
		Price:        price.InexactFloat64(),
		DownPayment:  down.InexactFloat64(),
		Mortgage:     mortgage.InexactFloat64(),
		ClosingCosts: money(in.ClosingCosts).InexactFloat64(),
	}
	if mortgage.IsPositive() {
		payment, ok := loans.PeriodicPayment(loans.LoanParameters{
			Principal:         result.Mortgage,
			AnnualRatePercent: mathutil.NonNegative(in.RatePercent),
			AmortizationYears: years,
			PaymentFrequency:  loans.Monthly,
		})
		if ok {
			result.MonthlyPayment = payment
		}
	}
	return result
}

// Calculate runs a sale and the purchase it funds.
func Calculate(sell SellInputs, buy BuyInputs) Result {
	sold := SellNet(sell)
	return Result{Sell: sold, Buy: Buy(buy, sold.Net)}
}
