package service

import "github.com/shopspring/decimal"

const (
	MaxDebtsPerPlan  = 50
	MaxHorizonMonths = 600 // 50 years
	MaxDueDay        = 31

	MaxDebtAmount   = 100_000_000 // balance, minimum payment and extra payment
	MaxInterestRate = 1000        // annual %

	// aprPlaces is the precision an APR is kept at.
	aprPlaces = 4

	DefaultCurrency = "EUR"

	// Store keys shared with earlier versions of the app.
	StateKey   = "toolstack.debtit.v1"
	ProfileKey = "toolstack.profile.v1"
)

var (
	// settledTolerance is the balance at or below which a debt counts as paid.
	settledTolerance = decimal.New(1, -2)

	maxDebtAmount   = decimal.NewFromInt(MaxDebtAmount)
	maxInterestRate = decimal.NewFromInt(MaxInterestRate)
)
