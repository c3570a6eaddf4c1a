package service

import (
	"slices"

	"debt-planner/domain"
)

// ledgerDebt is the simulator's private working copy of a debt.
type ledgerDebt struct {
	domain.Debt
	position int // index in the caller's list, the final tie-breaker
}

// CompareDebts returns the ordering used to prioritize payments for the
// given strategy. Anything other than snowball ranks as avalanche.
//
//   - avalanche: APR descending, then balance descending
//   - snowball: balance ascending
//
// Remaining ties keep the caller's order.
func CompareDebts(strategy domain.Strategy) func(a, b domain.Debt) int {
	if strategy == domain.Snowball {
		return func(a, b domain.Debt) int {
			return a.Balance.Cmp(b.Balance)
		}
	}
	return func(a, b domain.Debt) int {
		if c := b.APR.Cmp(a.APR); c != 0 {
			return c
		}
		return b.Balance.Cmp(a.Balance)
	}
}

// RankDebts returns a stably sorted copy of debts; the input is not touched.
func RankDebts(strategy domain.Strategy, debts []domain.Debt) []domain.Debt {
	ranked := slices.Clone(debts)
	slices.SortStableFunc(ranked, CompareDebts(strategy))
	return ranked
}

// rankUnsettled orders the still-open working debts for this month.
func rankUnsettled(strategy domain.Strategy, ledger []*ledgerDebt) []*ledgerDebt {
	cmp := CompareDebts(strategy)
	order := make([]*ledgerDebt, 0, len(ledger))
	for _, d := range ledger {
		if !isSettled(d.Balance) {
			order = append(order, d)
		}
	}
	slices.SortStableFunc(order, func(a, b *ledgerDebt) int {
		if c := cmp(a.Debt, b.Debt); c != 0 {
			return c
		}
		return a.position - b.position
	})
	return order
}
