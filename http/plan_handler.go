package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/service"
)

type PlanHandler struct {
	plans  *service.PlanService
	state  *service.StateService
	logger *zap.Logger
	now    func() time.Time
}

func NewPlanHandler(plans *service.PlanService, state *service.StateService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, state: state, logger: logger, now: time.Now}
}

// Routes mounts the plan endpoints. limit guards the endpoints that take an
// arbitrary plan in the request body.
func (h *PlanHandler) Routes(limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(limit).Post("/schedule", h.BuildSchedule)
	r.Get("/schedule", h.StoredSchedule)
	r.With(limit).Post("/compare", h.CompareStrategies)

	return r
}

// BuildSchedule handles POST /plan/schedule
// @Summary      Simulate a payoff plan
// @Description  Month-by-month payoff schedule for the debts and settings in the body
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        request body domain.PlanInput true "Debts and plan settings"
// @Success      200 {object} APIResponse{data=PlanResponse}
// @Failure      400 {object} APIResponse
// @Failure      429 {object} APIResponse
// @Router       /plan/schedule [post]
func (h *PlanHandler) BuildSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	debts, settings, err := service.NormalizePlanInput(input, h.now())
	if err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	h.respondWithPlan(w, r, debts, settings)
}

// StoredSchedule handles GET /plan/schedule
// @Summary      Simulate the stored plan
// @Description  Payoff schedule for the debts and settings saved in the state store
// @Tags         plan
// @Produce      json
// @Success      200 {object} APIResponse{data=PlanResponse}
// @Failure      500 {object} APIResponse
// @Router       /plan/schedule [get]
func (h *PlanHandler) StoredSchedule(w http.ResponseWriter, r *http.Request) {
	state, err := h.state.State(r.Context())
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	h.respondWithPlan(w, r, state.Debts, state.Settings)
}

// CompareStrategies handles POST /plan/compare
// @Summary      Compare avalanche and snowball
// @Description  Simulates both strategies and recommends the cheaper one
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        request body domain.PlanInput true "Debts and plan settings"
// @Success      200 {object} APIResponse{data=domain.StrategyComparison}
// @Failure      400 {object} APIResponse
// @Failure      429 {object} APIResponse
// @Router       /plan/compare [post]
func (h *PlanHandler) CompareStrategies(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	debts, settings, err := service.NormalizePlanInput(input, h.now())
	if err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	comparison, err := h.plans.CompareStrategies(r.Context(), debts, settings)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, comparison)
}

func (h *PlanHandler) respondWithPlan(w http.ResponseWriter, r *http.Request, debts []domain.Debt, settings domain.PlanSettings) {
	schedule, err := h.plans.BuildSchedule(r.Context(), debts, settings)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, PlanResponse{
		Settings: settings,
		Debts:    service.RankDebts(settings.Strategy, debts),
		Totals:   service.PortfolioTotals(debts),
		Schedule: schedule,
	})
}
