package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campo-erp/campo-erp/internal/shared"
)

// Handler exposes the inventory endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{sku}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateItemInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	item, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			shared.RespondError(w, http.StatusConflict, err)
			return
		}
		h.logger.Error("create inventory item", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	if err := h.service.Delete(r.Context(), sku); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, err)
			return
		}
		h.logger.Error("delete inventory item", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
