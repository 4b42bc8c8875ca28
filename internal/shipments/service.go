package shipments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Enqueuer schedules background work for a shipment, e.g. reverse
// geocoding an empty address. Nil is fine; enrichment is best-effort.
type Enqueuer interface {
	EnqueueShipmentGeocode(ctx context.Context, shipmentID string) error
}

// Service manages scheduled deliveries.
type Service struct {
	store     *store.Store
	estimator Estimator
	enqueuer  Enqueuer
	logger    *slog.Logger
}

// NewService builds Service.
func NewService(st *store.Store, estimator Estimator, enqueuer Enqueuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, estimator: estimator, enqueuer: enqueuer, logger: logger}
}

// List returns all shipments.
func (s *Service) List(ctx context.Context) ([]model.Shipment, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Shipments, nil
}

// Estimate previews distance and cost for a destination coordinate.
func (s *Service) Estimate(dest Coordinate) Estimate {
	return s.estimator.Estimate(dest)
}

// Create schedules a shipment. Distance and cost come from the destination
// coordinate when one is set; a coordinate-less entry keeps the manually
// entered kilometres. Shipments without an address are queued for
// reverse-geocode enrichment.
func (s *Service) Create(ctx context.Context, input CreateShipmentInput) (model.Shipment, error) {
	typ := input.Type
	if typ == "" {
		typ = model.ShipmentTypeLocal
	}
	if !typ.IsValid() {
		return model.Shipment{}, fmt.Errorf("shipments: invalid type %q", input.Type)
	}
	status := input.Status
	if status == "" {
		status = model.ShipmentStatusPending
	}
	if !status.IsValid() {
		return model.Shipment{}, fmt.Errorf("shipments: invalid status %q", input.Status)
	}

	sh := model.Shipment{
		ID:         shared.NewID("E"),
		CustomerID: input.CustomerID,
		Type:       typ,
		Address:    strings.TrimSpace(input.Address),
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		DistanceKm: input.DistanceKm,
		Status:     status,
	}
	if input.Latitude != 0 || input.Longitude != 0 {
		sh.DistanceKm = s.estimator.DistanceKm(Coordinate{Lat: input.Latitude, Lng: input.Longitude})
	}
	sh.Cost = s.estimator.CostForKm(sh.DistanceKm)

	err := s.store.Update(ctx, func(st *store.State) error {
		if !customerExists(st.Customers, input.CustomerID) {
			return fmt.Errorf("shipments: customer %s: %w", input.CustomerID, shared.ErrNotFound)
		}
		st.Shipments = append([]model.Shipment{sh}, st.Shipments...)
		return nil
	})
	if err != nil {
		return model.Shipment{}, err
	}

	if s.enqueuer != nil && sh.Address == "" && (sh.Latitude != 0 || sh.Longitude != 0) {
		if err := s.enqueuer.EnqueueShipmentGeocode(ctx, sh.ID); err != nil {
			s.logger.Warn("enqueue shipment geocode", slog.Any("error", err))
		}
	}
	return sh, nil
}

// SetStatus transitions a shipment.
func (s *Service) SetStatus(ctx context.Context, id string, status model.ShipmentStatus) (model.Shipment, error) {
	if !status.IsValid() {
		return model.Shipment{}, fmt.Errorf("shipments: invalid status %q", status)
	}
	var updated model.Shipment
	err := s.store.Update(ctx, func(st *store.State) error {
		for i, sh := range st.Shipments {
			if sh.ID == id {
				sh.Status = status
				st.Shipments[i] = sh
				updated = sh
				return nil
			}
		}
		return fmt.Errorf("shipments: %s: %w", id, shared.ErrNotFound)
	})
	if err != nil {
		return model.Shipment{}, err
	}
	return updated, nil
}

// Get returns a shipment by id.
func (s *Service) Get(ctx context.Context, id string) (model.Shipment, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return model.Shipment{}, err
	}
	for _, sh := range st.Shipments {
		if sh.ID == id {
			return sh, nil
		}
	}
	return model.Shipment{}, fmt.Errorf("shipments: %s: %w", id, shared.ErrNotFound)
}

// ApplyGeocodedAddress fills in a reverse-geocoded address. The address is
// only written while the field is still empty; an operator edit that landed
// in the meantime wins over the lookup result.
func (s *Service) ApplyGeocodedAddress(ctx context.Context, id, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	return s.store.Update(ctx, func(st *store.State) error {
		for i, sh := range st.Shipments {
			if sh.ID != id {
				continue
			}
			if sh.Address != "" {
				return nil
			}
			sh.Address = address
			st.Shipments[i] = sh
			return nil
		}
		return fmt.Errorf("shipments: %s: %w", id, shared.ErrNotFound)
	})
}

// Delete removes a shipment by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(st *store.State) error {
		kept := st.Shipments[:0]
		found := false
		for _, sh := range st.Shipments {
			if sh.ID == id {
				found = true
				continue
			}
			kept = append(kept, sh)
		}
		if !found {
			return fmt.Errorf("shipments: %s: %w", id, shared.ErrNotFound)
		}
		st.Shipments = kept
		return nil
	})
}

func customerExists(customers []model.Customer, id string) bool {
	for _, c := range customers {
		if c.ID == id {
			return true
		}
	}
	return false
}
