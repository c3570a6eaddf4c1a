package http

import "debt-planner/domain"

// PlanResponse is the simulated plan together with the inputs it was built from.
type PlanResponse struct {
	Settings domain.PlanSettings    `json:"settings"`
	Debts    []domain.Debt          `json:"debts"` // ranked by the chosen strategy
	Totals   domain.PortfolioTotals `json:"totals"`
	Schedule domain.ScheduleResult  `json:"schedule"`
}

// StateResponse is the stored state plus its current totals.
type StateResponse struct {
	domain.AppState
	Totals domain.PortfolioTotals `json:"totals"`
}
