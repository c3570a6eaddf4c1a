package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/service"
)

type StateHandler struct {
	state  *service.StateService
	logger *zap.Logger
}

func NewStateHandler(state *service.StateService, logger *zap.Logger) *StateHandler {
	return &StateHandler{state: state, logger: logger}
}

// Register adds the state, settings, debt and profile endpoints to r.
func (h *StateHandler) Register(r chi.Router) {
	r.Get("/state", h.GetState)
	r.Put("/state", h.ReplaceState)
	r.Patch("/settings", h.UpdateSettings)

	r.Post("/debts", h.AddDebt)
	r.Patch("/debts/{id}", h.UpdateDebt)
	r.Delete("/debts/{id}", h.DeleteDebt)

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.SaveProfile)
}

// GetState handles GET /state
// @Summary      Get the stored state
// @Tags         state
// @Produce      json
// @Success      200 {object} APIResponse{data=StateResponse}
// @Router       /state [get]
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.state.State(r.Context())
	if err != nil {
		internalError(w, h.logger, err)
		return
	}
	h.respondWithState(w, state)
}

// ReplaceState handles PUT /state
// @Summary      Replace the stored state
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        request body domain.PlanInput true "Complete state"
// @Success      200 {object} APIResponse{data=StateResponse}
// @Failure      400 {object} APIResponse
// @Router       /state [put]
func (h *StateHandler) ReplaceState(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	state, err := h.state.ReplaceState(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respondWithState(w, state)
}

// UpdateSettings handles PATCH /settings
// @Summary      Update plan settings
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        request body domain.SettingsPatch true "Fields to change"
// @Success      200 {object} APIResponse{data=StateResponse}
// @Failure      400 {object} APIResponse
// @Router       /settings [patch]
func (h *StateHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	state, err := h.state.UpdateSettings(r.Context(), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respondWithState(w, state)
}

// AddDebt handles POST /debts
// @Summary      Add a debt
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        request body domain.DebtInput true "New debt; the id is generated"
// @Success      201 {object} APIResponse{data=domain.Debt}
// @Failure      400 {object} APIResponse
// @Router       /debts [post]
func (h *StateHandler) AddDebt(w http.ResponseWriter, r *http.Request) {
	var input domain.DebtInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	debt, err := h.state.AddDebt(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, debt)
}

// UpdateDebt handles PATCH /debts/{id}
// @Summary      Edit a debt
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        id path string true "Debt ID"
// @Param        request body domain.DebtPatch true "Fields to change"
// @Success      200 {object} APIResponse{data=domain.Debt}
// @Failure      404 {object} APIResponse
// @Router       /debts/{id} [patch]
func (h *StateHandler) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	var patch domain.DebtPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	debt, err := h.state.UpdateDebt(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, debt)
}

// DeleteDebt handles DELETE /debts/{id}
// @Summary      Delete a debt
// @Tags         debts
// @Produce      json
// @Param        id path string true "Debt ID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /debts/{id} [delete]
func (h *StateHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.state.DeleteDebt(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"deleted": id})
}

// GetProfile handles GET /profile
// @Summary      Get the profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.Profile}
// @Router       /profile [get]
func (h *StateHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.state.Profile(r.Context())
	if err != nil {
		internalError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, profile)
}

// SaveProfile handles PUT /profile
// @Summary      Replace the profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body domain.Profile true "Profile"
// @Success      200 {object} APIResponse{data=domain.Profile}
// @Failure      400 {object} APIResponse
// @Router       /profile [put]
func (h *StateHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := decodeJSON(w, r, &profile); err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	saved, err := h.state.SaveProfile(r.Context(), profile)
	if err != nil {
		internalError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, saved)
}

func (h *StateHandler) respondWithState(w http.ResponseWriter, state domain.AppState) {
	writeJSON(w, h.logger, http.StatusOK, StateResponse{
		AppState: state,
		Totals:   service.PortfolioTotals(state.Debts),
	})
}

// fail maps service errors to status codes.
func (h *StateHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDebtNotFound):
		notFound(w, h.logger, err.Error())
	case isValidationError(err):
		badRequest(w, h.logger, err.Error())
	default:
		internalError(w, h.logger, err)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		service.ErrInvalidStrategy,
		service.ErrInvalidStartMonth,
		service.ErrInvalidHorizon,
		service.ErrTooManyDebts,
		service.ErrDuplicateDebtID,
		service.ErrAmountTooLarge,
		service.ErrInvalidImport,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
