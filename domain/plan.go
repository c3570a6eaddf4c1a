package domain

import "github.com/shopspring/decimal"

type Strategy string

const (
	Avalanche Strategy = "avalanche" // highest APR first
	Snowball  Strategy = "snowball"  // smallest balance first
)

const DefaultHorizonMonths = 240

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == Avalanche || s == Snowball
}

func (s Strategy) Label() string {
	switch s {
	case Snowball:
		return "Snowball (smallest balance first)"
	default:
		return "Avalanche (highest APR first)"
	}
}

type PlanSettings struct {
	Strategy      Strategy        `json:"strategy"`
	ExtraMonthly  decimal.Decimal `json:"extraMonthly"`
	StartMonth    YearMonth       `json:"startMonth"`
	HorizonMonths int             `json:"horizonMonths"`
	Currency      string          `json:"currency"`
}

// Horizon returns the configured horizon, or DefaultHorizonMonths when unset.
func (s PlanSettings) Horizon() int {
	if s.HorizonMonths <= 0 {
		return DefaultHorizonMonths
	}
	return s.HorizonMonths
}
