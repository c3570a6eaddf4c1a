package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"debt-planner/report"
	"debt-planner/service"
)

type ReportHandler struct {
	plans    *service.PlanService
	state    *service.StateService
	renderer *report.Renderer
	logger   *zap.Logger
	now      func() time.Time
}

func NewReportHandler(plans *service.PlanService, state *service.StateService, renderer *report.Renderer, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{plans: plans, state: state, renderer: renderer, logger: logger, now: time.Now}
}

// Report handles GET /report
// @Summary      Printable payoff report
// @Description  Text summary (first 24 months) or the full schedule as CSV
// @Tags         report
// @Produce      plain
// @Produce      text/csv
// @Param        format query string false "text or csv" Enums(text, csv) default(text)
// @Success      200 {string} string
// @Failure      400 {object} APIResponse
// @Router       /report [get]
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "csv" {
		badRequest(w, h.logger, "format must be text or csv")
		return
	}

	ctx := r.Context()
	state, err := h.state.State(ctx)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}
	profile, err := h.state.Profile(ctx)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}
	schedule, err := h.plans.BuildSchedule(ctx, state.Debts, state.Settings)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	in := report.Input{
		Profile:     profile,
		Settings:    state.Settings,
		Debts:       service.RankDebts(state.Settings.Strategy, state.Debts),
		Totals:      service.PortfolioTotals(state.Debts),
		Schedule:    schedule,
		GeneratedAt: h.now(),
	}

	var buf bytes.Buffer
	if format == "csv" {
		err = h.renderer.RenderCSV(&buf, in)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="debt-it-schedule-%s.csv"`, in.GeneratedAt.Format(time.DateOnly)))
	} else {
		err = h.renderer.RenderText(&buf, in)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	if err != nil {
		w.Header().Del("Content-Disposition")
		internalError(w, h.logger, err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("could not write report", zap.Error(err))
	}
}
