package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"debt-planner/service"
)

type TransferHandler struct {
	transfer *service.TransferService
	logger   *zap.Logger
}

func NewTransferHandler(transfer *service.TransferService, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{transfer: transfer, logger: logger}
}

// Export handles GET /export
// @Summary      Export state and profile
// @Description  Downloads {exportedAt, profile, data} as a JSON file
// @Tags         transfer
// @Produce      json
// @Success      200 {object} domain.ExportDocument
// @Failure      500 {object} APIResponse
// @Router       /export [get]
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.transfer.Export(r.Context())
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		internalError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ExportFilename(doc.ExportedAt)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		h.logger.Warn("could not write export", zap.Error(err))
	}
}

// Import handles POST /import
// @Summary      Import an export file
// @Description  Replaces the stored state; the file needs data.settings and data.debts
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request body domain.ExportDocument true "Export document"
// @Success      200 {object} APIResponse{data=StateResponse}
// @Failure      400 {object} APIResponse
// @Router       /import [post]
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		badRequest(w, h.logger, err.Error())
		return
	}

	state, err := h.transfer.Import(r.Context(), body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImport) {
			badRequest(w, h.logger, "Import failed: "+err.Error())
			return
		}
		internalError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, StateResponse{
		AppState: state,
		Totals:   service.PortfolioTotals(state.Debts),
	})
}
