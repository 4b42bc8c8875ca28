package customers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campo-erp/campo-erp/internal/shared"
)

// Handler exposes the customer endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers customer routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list customers", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateCustomerInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	c, err := h.service.Create(r.Context(), input)
	if err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, c)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, err)
			return
		}
		h.logger.Error("delete customer", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
