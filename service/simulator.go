package service

import (
	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// Simulate runs the month-by-month payoff plan for debts under settings.
//
// The inputs are copied before anything is mutated, so Simulate is a pure
// function of its arguments and can be called from any number of goroutines.
// It stops at the first month in which every debt is settled (PaidOff) or
// after settings.Horizon() months (payoff month left nil). Debts that start
// at or below the settled tolerance never appear in the schedule.
func Simulate(debts []domain.Debt, settings domain.PlanSettings) domain.ScheduleResult {
	ledger := make([]*ledgerDebt, 0, len(debts))
	for i, d := range debts {
		working := d
		working.Balance = round2(clampNonNegative(d.Balance))
		working.APR = clampNonNegative(d.APR)
		working.MinPayment = round2(clampNonNegative(d.MinPayment))
		if isSettled(working.Balance) {
			continue
		}
		ledger = append(ledger, &ledgerDebt{Debt: working, position: i})
	}

	result := domain.ScheduleResult{
		Rows:          []domain.ScheduleRow{},
		TotalInterest: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}
	if len(ledger) == 0 {
		return result
	}

	horizon := settings.Horizon()
	month := settings.StartMonth
	for i := 0; i < horizon; i++ {
		out := stepMonth(ledger, settings.Strategy, settings.ExtraMonthly, month)
		result.Rows = append(result.Rows, out.row)
		result.TotalInterest = round2(result.TotalInterest.Add(out.interest))
		result.TotalPaid = round2(result.TotalPaid.Add(out.paid))

		if allSettled(out.order) {
			payoff := month
			result.PayoffMonth = &payoff
			result.Months = i + 1
			return result
		}
		month = month.AddMonths(1)
	}

	result.Months = horizon
	return result
}
