package viewmodel

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campo-erp/campo-erp/internal/shared"
)

// Handler serves view snapshots.
type Handler struct {
	logger  *slog.Logger
	builder *Builder
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, builder *Builder) *Handler {
	return &Handler{logger: logger, builder: builder}
}

// MountRoutes registers the view routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Get("/{fragment}", h.show)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	snap, err := h.builder.Build(r.Context(), chi.URLParam(r, "fragment"))
	if err != nil {
		h.logger.Error("build view snapshot", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, snap)
}
