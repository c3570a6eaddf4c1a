package domain

import "github.com/shopspring/decimal"

type StrategyResult struct {
	Strategy      Strategy        `json:"strategy"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Months        int             `json:"months"`
	PayoffMonth   *YearMonth      `json:"payoffMonth"`
}

type StrategyComparison struct {
	Avalanche     StrategyResult  `json:"avalanche"`
	Snowball      StrategyResult  `json:"snowball"`
	Recommended   Strategy        `json:"recommended"`
	InterestSaved decimal.Decimal `json:"interestSaved"`
	MonthsSaved   int             `json:"monthsSaved"`
}
