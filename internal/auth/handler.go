// Package auth exposes the demo login flag. There is no credential
// backend; login is a persisted boolean toggled client-side.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Handler serves the login-flag endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler builds Handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// MountRoutes registers auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/toggle", h.toggle)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.LoadAuth(r.Context()))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.ToggleAuth(r.Context()))
}
