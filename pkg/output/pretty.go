package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/realty-calc/internal/report"
	"github.com/iwvelando/realty-calc/pkg/cashflow"
	"github.com/iwvelando/realty-calc/pkg/format"
	"github.com/iwvelando/realty-calc/pkg/loans"
	"github.com/iwvelando/realty-calc/pkg/proceeds"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const titleWidth = 44

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	gainStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	lossStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// prettyWriter accumulates styled lines for one report.
type prettyWriter struct {
	b strings.Builder
	p *message.Printer
}

func (pw *prettyWriter) title(title string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(titleWidth).
		Align(lipgloss.Center)
	pw.b.WriteString(box.Render(titleStyle.Render(title)))
	pw.b.WriteString("\n")
}

func (pw *prettyWriter) header(header string) {
	pw.b.WriteString("  ")
	pw.b.WriteString(headerStyle.Render(header))
	pw.b.WriteString("\n")
}

func (pw *prettyWriter) row(label, value string) {
	pw.b.WriteString(labelStyle.Render(fmt.Sprintf("  %-26s", label)))
	pw.b.WriteString(value)
	pw.b.WriteString("\n")
}

func (pw *prettyWriter) blank() {
	pw.b.WriteString("\n")
}

// money formats amount with grouped digits and two decimals.
func (pw *prettyWriter) money(amount float64) string {
	if amount < 0 {
		return pw.p.Sprintf("-$%.2f", -amount)
	}
	return pw.p.Sprintf("$%.2f", amount)
}

func (pw *prettyWriter) optionalMoney(amount *float64) string {
	if amount == nil {
		return format.Placeholder
	}
	return pw.money(*amount)
}

// signed colors a net figure by its sign.
func (pw *prettyWriter) signed(amount float64) string {
	if amount < 0 {
		return lossStyle.Render(pw.money(amount))
	}
	return gainStyle.Render(pw.money(amount))
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, r report.Report) error {
	pw := &prettyWriter{p: message.NewPrinter(language.English)}

	if r.Mortgage != nil {
		pw.mortgage(*r.Mortgage)
	}
	if r.BuySell != nil {
		pw.buySell(*r.BuySell)
	}
	if r.Budget != nil {
		pw.budget(*r.Budget)
	}
	if r.Cashflow != nil {
		pw.cashflow(*r.Cashflow)
	}

	_, err := io.WriteString(w, pw.b.String())
	return err
}

func (pw *prettyWriter) mortgage(m report.Mortgage) {
	pw.title("MORTGAGE")
	pw.row(m.PaymentFrequency+" payment", pw.optionalMoney(m.Payment))
	pw.row("Interest per period", pw.optionalMoney(m.InterestPerPeriod))
	pw.blank()

	if len(m.Chart) > 0 {
		if m.HasExtraPayments {
			pw.header("Balance by year with extra payments")
		} else {
			pw.header("Balance by year")
		}
		for _, point := range m.Chart {
			pw.row(fmt.Sprintf("Year %d", point.Year), format.WholeCurrency(point.RemainingBalance))
		}
		pw.blank()
	}

	pw.header("Payment breakdown")
	pw.slices(m.Breakdown)
	pw.blank()

	if m.Summary != nil {
		pw.header("Payoff")
		pw.row("Months to payoff", pw.p.Sprintf("%d", m.Summary.MonthsSimulated))
		if m.PayoffDate != "" {
			pw.row("Final payment", m.PayoffDate)
		}
		pw.row("Interest paid", pw.money(m.Summary.InterestPaid))
		pw.row("Extra principal applied", pw.money(m.Summary.ExtraContribution))
		if m.Summary.Truncated {
			pw.row("Balance outstanding", lossStyle.Render(pw.money(m.Summary.RemainingBalance)))
		}
		pw.blank()
	}
}

func (pw *prettyWriter) slices(slices []loans.Slice) {
	for _, slice := range slices {
		pw.row(slice.Label, pw.money(slice.Value))
	}
}

func (pw *prettyWriter) buySell(r proceeds.Result) {
	pw.title("BUY / SELL")
	pw.header("Sell")
	pw.row("Sale price", pw.money(r.Sell.Price))
	pw.row("Mortgage balance", pw.money(r.Sell.MortgageBalance))
	pw.row("Realtor fee", pw.money(r.Sell.RealtorFee))
	pw.row("Legal fees", pw.money(r.Sell.LegalFees))
	pw.row("Other costs", pw.money(r.Sell.OtherCosts))
	pw.row("Net proceeds", pw.signed(r.Sell.Net))
	pw.blank()

	pw.header("Buy")
	pw.row("Purchase price", pw.money(r.Buy.Price))
	pw.row("Down payment", pw.money(r.Buy.DownPayment))
	pw.row("Mortgage", pw.money(r.Buy.Mortgage))
	pw.row("Closing costs", pw.money(r.Buy.ClosingCosts))
	pw.row("Monthly payment", pw.money(r.Buy.MonthlyPayment))
	pw.blank()
}

func (pw *prettyWriter) budget(r cashflow.BudgetResult) {
	pw.title("BUDGET")
	period := string(r.DisplayPeriod)
	pw.row("Income ("+period+")", pw.money(r.Income))
	pw.row("Expenses ("+period+")", pw.money(r.Expenses))
	pw.row("Net ("+period+")", pw.signed(r.Net))
	pw.blank()
	pw.header("Monthly split")
	pw.cashflowSlices(r.Slices)
	pw.blank()
}

func (pw *prettyWriter) cashflow(r cashflow.CashflowResult) {
	pw.title("CASHFLOW")
	pw.row("Income", pw.money(r.Income))
	pw.row("Expenses", pw.money(r.Expenses))
	pw.row("Net", pw.signed(r.Net))
	pw.blank()
	pw.header("Split")
	pw.cashflowSlices(r.Slices)
	pw.blank()
}

func (pw *prettyWriter) cashflowSlices(slices []cashflow.Slice) {
	for _, slice := range slices {
		pw.row(slice.Label, pw.money(slice.Value))
	}
}
