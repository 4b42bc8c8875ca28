package shipments

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campo-erp/campo-erp/internal/geo"
	"github.com/campo-erp/campo-erp/internal/shared"
)

// Geocoder abstracts the external address lookup collaborator. The session
// key scopes stale-result detection to one caller.
type Geocoder interface {
	Search(ctx context.Context, sessionKey, query string) ([]geo.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (geo.Place, bool, error)
}

// Handler exposes the shipment endpoints plus the geocoding passthroughs.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	geocoder Geocoder
	validate *validator.Validate
}

// NewHandler builds Handler. A nil geocoder degrades the lookup endpoints
// to empty suggestions.
func NewHandler(logger *slog.Logger, service *Service, geocoder Geocoder) *Handler {
	return &Handler{logger: logger, service: service, geocoder: geocoder, validate: validator.New()}
}

// MountRoutes registers shipment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/estimate", h.estimate)
	r.Post("/{id}/status", h.setStatus)
	r.Delete("/{id}", h.remove)
	r.Get("/geo/search", h.geoSearch)
	r.Get("/geo/reverse", h.geoReverse)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list shipments", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateShipmentInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	sh, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, err)
			return
		}
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, sh)
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) {
	var input EstimateInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	est := h.service.Estimate(Coordinate{Lat: input.Latitude, Lng: input.Longitude})
	shared.RespondJSON(w, http.StatusOK, est)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var input StatusInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err)
		return
	}
	sh, err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, err)
			return
		}
		shared.RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, sh)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, err)
			return
		}
		h.logger.Error("delete shipment", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// geoSearch returns address suggestions. Lookup failures degrade to an
// empty list; suggestions never block anything.
func (h *Handler) geoSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if h.geocoder == nil || query == "" {
		shared.RespondJSON(w, http.StatusOK, []geo.Place{})
		return
	}
	places, err := h.geocoder.Search(r.Context(), clientKey(r), query)
	if err != nil {
		if !errors.Is(err, geo.ErrStaleResult) {
			h.logger.Warn("geocode search", slog.Any("error", err))
		}
		places = nil
	}
	if places == nil {
		places = []geo.Place{}
	}
	shared.RespondJSON(w, http.StatusOK, places)
}

// clientKey scopes search sessions to one caller. The ephemeral port is
// dropped so consecutive requests from the same operator share a session.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) geoReverse(w http.ResponseWriter, r *http.Request) {
	if h.geocoder == nil {
		shared.RespondJSON(w, http.StatusOK, []geo.Place{})
		return
	}
	lat, _ := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, _ := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	place, ok, err := h.geocoder.Reverse(r.Context(), lat, lng)
	if err != nil {
		h.logger.Warn("geocode reverse", slog.Any("error", err))
		ok = false
	}
	if !ok {
		shared.RespondJSON(w, http.StatusOK, []geo.Place{})
		return
	}
	shared.RespondJSON(w, http.StatusOK, []geo.Place{place})
}
