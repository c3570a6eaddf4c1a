package service

import (
	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// monthOutcome is what a single step adds to the running totals.
type monthOutcome struct {
	row      domain.ScheduleRow
	interest decimal.Decimal
	paid     decimal.Decimal
	order    []*ledgerDebt
}

// stepMonth advances every working debt by one month and mutates the
// balances in place. The order of the phases matters: interest accrues
// first, debts are ranked once on the post-interest balances, minimums are
// paid, and only then does the extra pool cascade down the ranking.
func stepMonth(
	ledger []*ledgerDebt,
	strategy domain.Strategy,
	extra decimal.Decimal,
	month domain.YearMonth,
) monthOutcome {

	out := monthOutcome{
		row: domain.ScheduleRow{
			Month:        month,
			InterestByID: make(map[string]decimal.Decimal),
			PaymentByID:  make(map[string]decimal.Decimal),
		},
		interest: decimal.Zero,
		paid:     decimal.Zero,
	}

	// 1) Interest on every open balance
	for _, d := range ledger {
		if isSettled(d.Balance) {
			continue
		}
		interest := monthlyInterest(d.Balance, d.APR)
		d.Balance = round2(d.Balance.Add(interest))
		out.row.InterestByID[d.ID] = interest
		out.interest = round2(out.interest.Add(interest))
	}

	// 2) Rank once for the whole month
	out.order = rankUnsettled(strategy, ledger)

	// 3) Minimums; any excess of a minimum over the balance is not carried
	for _, d := range out.order {
		if isSettled(d.Balance) {
			continue
		}
		pay := round2(decimal.Min(d.MinPayment, d.Balance))
		out.pay(d, pay)
	}

	// 4) Extra pool cascades from the top-ranked debt downwards
	pool := round2(clampNonNegative(extra))
	idx := 0
	for pool.GreaterThan(settledTolerance) && idx < len(out.order) {
		target := out.order[idx]
		if isSettled(target.Balance) {
			idx++
			continue
		}
		pay := round2(decimal.Min(pool, target.Balance))
		out.pay(target, pay)
		pool = round2(pool.Sub(pay))
		if isSettled(target.Balance) {
			idx++
		}
	}

	// 5) Remaining open balance
	remaining := decimal.Zero
	for _, d := range out.order {
		if !isSettled(d.Balance) {
			remaining = remaining.Add(d.Balance)
		}
	}
	out.row.Remaining = round2(remaining)

	return out
}

func (o *monthOutcome) pay(d *ledgerDebt, amount decimal.Decimal) {
	d.Balance = round2(d.Balance.Sub(amount))
	o.row.PaymentByID[d.ID] = round2(o.row.PaymentByID[d.ID].Add(amount))
	o.paid = round2(o.paid.Add(amount))
}

// allSettled reports whether none of the ranked debts has a balance left.
func allSettled(order []*ledgerDebt) bool {
	for _, d := range order {
		if !isSettled(d.Balance) {
			return false
		}
	}
	return true
}
