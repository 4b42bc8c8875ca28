package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/campo-erp/campo-erp/internal/auth"
	"github.com/campo-erp/campo-erp/internal/customers"
	"github.com/campo-erp/campo-erp/internal/inventory"
	"github.com/campo-erp/campo-erp/internal/observability"
	"github.com/campo-erp/campo-erp/internal/orders"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/shipments"
	"github.com/campo-erp/campo-erp/internal/store"
	"github.com/campo-erp/campo-erp/internal/viewmodel"
	"github.com/campo-erp/campo-erp/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Store            *store.Store
	AuthHandler      *auth.Handler
	CustomersHandler *customers.Handler
	InventoryHandler *inventory.Handler
	OrdersHandler    *orders.Handler
	ShipmentsHandler *shipments.Handler
	ViewsHandler     *viewmodel.Handler
	JobHandler       *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Campo defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/customers", params.CustomersHandler.MountRoutes)
	r.Route("/inventory", params.InventoryHandler.MountRoutes)
	r.Route("/sales", params.OrdersHandler.MountRoutes)
	r.Route("/shipments", params.ShipmentsHandler.MountRoutes)
	r.Route("/views", params.ViewsHandler.MountRoutes)

	// Discards the persisted slot and restores the demo dataset.
	r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
		state, err := params.Store.Reset(r.Context())
		if err != nil {
			params.Logger.Error("reset demo state", slog.Any("error", err))
			shared.RespondError(w, http.StatusInternalServerError, err)
			return
		}
		shared.RespondJSON(w, http.StatusOK, state)
	})

	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
