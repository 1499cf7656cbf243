package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/realty-calc/internal/report"
	"github.com/iwvelando/realty-calc/pkg/format"
)

// csvWriter writes quoted section,item,value rows.
type csvWriter struct {
	b strings.Builder
}

func (cw *csvWriter) row(section, item, value string) {
	fmt.Fprintf(&cw.b, `"%s","%s","%s"`+"\n", section, item, value)
}

func (cw *csvWriter) amount(section, item string, value float64) {
	cw.row(section, item, fmt.Sprintf("%.2f", value))
}

func (cw *csvWriter) optionalAmount(section, item string, value *float64) {
	if value == nil {
		cw.row(section, item, format.Placeholder)
		return
	}
	cw.amount(section, item, *value)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, r report.Report) error {
	cw := &csvWriter{}
	cw.row("section", "item", "value")

	if m := r.Mortgage; m != nil {
		cw.row("mortgage", "payment frequency", m.PaymentFrequency)
		cw.optionalAmount("mortgage", "payment", m.Payment)
		cw.optionalAmount("mortgage", "interest per period", m.InterestPerPeriod)
		for _, point := range m.Chart {
			cw.amount("mortgage", fmt.Sprintf("balance year %d", point.Year), point.RemainingBalance)
		}
		for _, slice := range m.Breakdown {
			cw.amount("mortgage", strings.ToLower(slice.Label), slice.Value)
		}
		if m.Summary != nil {
			cw.row("mortgage", "months to payoff", fmt.Sprintf("%d", m.Summary.MonthsSimulated))
			cw.amount("mortgage", "simulated interest paid", m.Summary.InterestPaid)
			cw.amount("mortgage", "extra principal applied", m.Summary.ExtraContribution)
			cw.amount("mortgage", "balance outstanding", m.Summary.RemainingBalance)
		}
		if m.PayoffDate != "" {
			cw.row("mortgage", "final payment", m.PayoffDate)
		}
	}

	if bs := r.BuySell; bs != nil {
		cw.amount("sell", "price", bs.Sell.Price)
		cw.amount("sell", "mortgage balance", bs.Sell.MortgageBalance)
		cw.amount("sell", "realtor fee", bs.Sell.RealtorFee)
		cw.amount("sell", "legal fees", bs.Sell.LegalFees)
		cw.amount("sell", "other costs", bs.Sell.OtherCosts)
		cw.amount("sell", "net proceeds", bs.Sell.Net)
		cw.amount("buy", "price", bs.Buy.Price)
		cw.amount("buy", "down payment", bs.Buy.DownPayment)
		cw.amount("buy", "mortgage", bs.Buy.Mortgage)
		cw.amount("buy", "closing costs", bs.Buy.ClosingCosts)
		cw.amount("buy", "monthly payment", bs.Buy.MonthlyPayment)
	}

	if b := r.Budget; b != nil {
		period := string(b.DisplayPeriod)
		cw.amount("budget", "income ("+period+")", b.Income)
		cw.amount("budget", "expenses ("+period+")", b.Expenses)
		cw.amount("budget", "net ("+period+")", b.Net)
	}

	if c := r.Cashflow; c != nil {
		cw.amount("cashflow", "income", c.Income)
		cw.amount("cashflow", "expenses", c.Expenses)
		cw.amount("cashflow", "net", c.Net)
	}

	_, err := io.WriteString(w, cw.b.String())
	return err
}
