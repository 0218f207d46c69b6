package httpadapter

import (
	"log/slog"
	"net/http"

	"campaign-sync/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps are the use cases and side handlers served by Handler. Jobs, Progress
// and Metrics are optional; their routes answer 503 or are not mounted when
// they are nil.
type Deps struct {
	Sync      port.SyncUseCase
	Validate  port.ValidationUseCase
	Reconcile port.ReconcileUseCase
	Jobs      port.JobPublisher
	Progress  http.Handler
	Metrics   http.Handler
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	deps   Deps
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	h := &Handler{deps: deps, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaign-sets/{id}", func(r chi.Router) {
			r.Post("/sync", h.handleSync)
			r.Post("/jobs", h.handleEnqueueSync)
			r.Get("/validation", h.handleValidation)
		})
		r.Post("/accounts/{accountID}/reconcile", h.handleReconcile)
		r.Post("/accounts/{accountID}/jobs", h.handleEnqueueReconcile)
		if deps.Progress != nil {
			r.Method(http.MethodGet, "/progress", deps.Progress)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
