package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Plan     *PlanHandler
	State    *StateHandler
	Transfer *TransferHandler
	Report   *ReportHandler
}

// NewRouter wires every endpoint under /api/v1 behind the shared middleware.
func NewRouter(h Handlers, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	limit := RateLimit(limiter, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/plan", h.Plan.Routes(limit))
		h.State.Register(r)

		r.Get("/export", h.Transfer.Export)
		r.With(limit).Post("/import", h.Transfer.Import)

		r.Get("/report", h.Report.Report)
	})

	return r
}
