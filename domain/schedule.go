package domain

import "github.com/shopspring/decimal"

// ScheduleRow is the ledger entry of one simulated month. Both maps are keyed
// by debt id and only hold debts that were unsettled when the month began.
type ScheduleRow struct {
	Month        YearMonth                  `json:"month"`
	InterestByID map[string]decimal.Decimal `json:"interestById"`
	PaymentByID  map[string]decimal.Decimal `json:"paymentById"`
	Remaining    decimal.Decimal            `json:"remaining"`
}

func (r ScheduleRow) TotalInterest() decimal.Decimal {
	return sumRounded(r.InterestByID)
}

func (r ScheduleRow) TotalPaid() decimal.Decimal {
	return sumRounded(r.PaymentByID)
}

type ScheduleResult struct {
	Rows          []ScheduleRow   `json:"rows"`
	PayoffMonth   *YearMonth      `json:"payoffMonth"` // nil: horizon exceeded
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Months        int             `json:"months"`
}

// PaidOff reports whether every debt was settled within the horizon.
func (r ScheduleResult) PaidOff() bool {
	return r.PayoffMonth != nil
}

func sumRounded(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v).Round(2)
	}
	return total
}
