// Package report turns a simulated schedule into documents people read:
// a plain-text payoff summary and a CSV of the full schedule.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// MaxScheduleRows is how many months the text summary lists.
const MaxScheduleRows = 24

type Input struct {
	Profile     domain.Profile
	Settings    domain.PlanSettings
	Debts       []domain.Debt // in display order
	Totals      domain.PortfolioTotals
	Schedule    domain.ScheduleResult
	GeneratedAt time.Time
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("summary").Parse(summaryTemplate))}
}

type debtLine struct {
	Name, Balance, APR, MinPayment string
	DueDay                         int
}

type rowLine struct {
	Month, Interest, Paid, Remaining string
}

type summaryView struct {
	Org, User, Generated       string
	Strategy, Extra, Start     string
	TotalBalance, TotalMinimum string
	Payoff                     string
	TotalInterest, TotalPaid   string
	Debts                      []debtLine
	Rows                       []rowLine
	RowLimit                   int
	Truncated                  bool
	TotalMonths                int
}

// RenderText writes the human-readable payoff summary. Only the first
// MaxScheduleRows months are listed, however long the simulation ran.
func (r *Renderer) RenderText(w io.Writer, in Input) error {
	currency := in.Settings.Currency
	view := summaryView{
		Org:           orDash(in.Profile.Org),
		User:          orDash(in.Profile.User),
		Generated:     in.GeneratedAt.Format(time.DateOnly),
		Strategy:      in.Settings.Strategy.Label(),
		Extra:         Money(in.Settings.ExtraMonthly, currency),
		Start:         in.Settings.StartMonth.String(),
		TotalBalance:  Money(in.Totals.TotalBalance, currency),
		TotalMinimum:  Money(in.Totals.TotalMinimum, currency),
		Payoff:        PayoffLabel(in.Schedule, in.Settings.Horizon()),
		TotalInterest: Money(in.Schedule.TotalInterest, currency),
		TotalPaid:     Money(in.Schedule.TotalPaid, currency),
		RowLimit:      MaxScheduleRows,
		TotalMonths:   len(in.Schedule.Rows),
	}

	for _, d := range in.Debts {
		view.Debts = append(view.Debts, debtLine{
			Name:       orDash(d.Name),
			Balance:    Money(d.Balance, currency),
			APR:        d.APR.StringFixed(2) + "%",
			MinPayment: Money(d.MinPayment, currency),
			DueDay:     d.DueDay,
		})
	}

	rows := in.Schedule.Rows
	if len(rows) > MaxScheduleRows {
		rows = rows[:MaxScheduleRows]
		view.Truncated = true
	}
	for _, row := range rows {
		view.Rows = append(view.Rows, rowLine{
			Month:     row.Month.String(),
			Interest:  Money(row.TotalInterest(), currency),
			Paid:      Money(row.TotalPaid(), currency),
			Remaining: Money(row.Remaining, currency),
		})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := r.tmpl.Execute(tw, view); err != nil {
		return fmt.Errorf("could not render summary: %w", err)
	}
	return tw.Flush()
}

// RenderCSV writes every simulated month with one payment column per debt.
func (r *Renderer) RenderCSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)

	header := []string{"month", "interest", "paid", "remaining"}
	for _, label := range paymentLabels(in.Debts) {
		header = append(header, "payment:"+label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}

	for _, row := range in.Schedule.Rows {
		record := []string{
			row.Month.String(),
			row.TotalInterest().StringFixed(2),
			row.TotalPaid().StringFixed(2),
			row.Remaining.StringFixed(2),
		}
		for _, d := range in.Debts {
			record = append(record, row.PaymentByID[d.ID].StringFixed(2))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write csv row %s: %w", row.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// paymentLabels names each debt's payment column. Blank names fall back to the
// id and repeated names get the id appended, so every column is distinct.
func paymentLabels(debts []domain.Debt) []string {
	seen := make(map[string]int, len(debts))
	for _, d := range debts {
		seen[d.Name]++
	}

	labels := make([]string, len(debts))
	for i, d := range debts {
		switch {
		case d.Name == "":
			labels[i] = d.ID
		case seen[d.Name] > 1:
			labels[i] = d.Name + " (" + d.ID + ")"
		default:
			labels[i] = d.Name
		}
	}
	return labels
}

// Money formats an amount as "1234.50 EUR".
func Money(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

// PayoffLabel is "2025-03 (15 months)" or "Not within 240 months".
func PayoffLabel(schedule domain.ScheduleResult, horizon int) string {
	if schedule.PayoffMonth == nil {
		return "Not within " + strconv.Itoa(horizon) + " months"
	}
	return fmt.Sprintf("%s (%d months)", schedule.PayoffMonth, schedule.Months)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
