package domain

import "github.com/shopspring/decimal"

type Debt struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	APR        decimal.Decimal `json:"apr"` // annual %, e.g. 12.5
	MinPayment decimal.Decimal `json:"minPayment"`
	DueDay     int             `json:"dueDay"` // informational only, 1..31
	Notes      string          `json:"notes"`
}

// PortfolioTotals summarizes the debts as entered, before any simulation.
type PortfolioTotals struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalMinimum decimal.Decimal `json:"totalMinimum"`
}
