package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campo-erp/campo-erp/internal/inventory"
	"github.com/campo-erp/campo-erp/internal/shared"
)

// Handler exposes the sales-order endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
	r.Post("/orders/quote", h.quote)
	r.Put("/orders/{id}", h.update)
	r.Post("/orders/{id}/status", h.setStatus)
	r.Delete("/orders/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list orders", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, orders)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var input QuoteInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	pricing, err := h.service.Quote(r.Context(), input)
	if err != nil {
		h.respondServiceError(w, "quote order", err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, pricing)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateOrderInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	order, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.respondServiceError(w, "create order", err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, order)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input UpdateOrderInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	order, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		h.respondServiceError(w, "update order", err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var input StatusInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if !input.Status.IsValid() {
		shared.RespondError(w, http.StatusUnprocessableEntity, errors.New("orders: unknown status"))
		return
	}
	order, err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		h.respondServiceError(w, "set order status", err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondServiceError maps domain failures onto status codes. Stock
// shortfalls surface as 409 with the offending SKU and the missing units.
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	var shortfall *inventory.ShortfallError
	switch {
	case errors.As(err, &shortfall):
		shared.RespondJSON(w, http.StatusConflict, map[string]any{
			"error":     shortfall.Error(),
			"sku":       shortfall.SKU,
			"requested": shortfall.Requested,
			"available": shortfall.Available,
			"shortfall": shortfall.Shortfall(),
		})
	case errors.Is(err, inventory.ErrUnknownSKU), errors.Is(err, ErrNoItems):
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, ErrOrderCancelled):
		shared.RespondError(w, http.StatusConflict, err)
	case errors.Is(err, shared.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, err)
	default:
		h.logger.Error(op, slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
	}
}
