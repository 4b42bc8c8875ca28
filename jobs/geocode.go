package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/campo-erp/campo-erp/internal/geo"
	jobmetrics "github.com/campo-erp/campo-erp/internal/jobs"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/shipments"
)

// Reverser resolves a coordinate to an address.
type Reverser interface {
	Reverse(ctx context.Context, lat, lng float64) (geo.Place, bool, error)
}

// GeocodeJob enriches shipments that were scheduled without an address.
type GeocodeJob struct {
	shipments *shipments.Service
	geocoder  Reverser
	logger    *slog.Logger
	metrics   *jobmetrics.Metrics
}

// NewGeocodeJob constructs a GeocodeJob. A nil metrics value disables job
// instrumentation.
func NewGeocodeJob(svc *shipments.Service, geocoder Reverser, logger *slog.Logger, metrics *jobmetrics.Metrics) *GeocodeJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeocodeJob{shipments: svc, geocoder: geocoder, logger: logger, metrics: metrics}
}

// Handle processes TaskTypeShipmentGeocode tasks. A shipment that gained an
// address since the task was enqueued is left untouched.
func (j *GeocodeJob) Handle(ctx context.Context, t *asynq.Task) error {
	return j.metrics.Track("shipment_geocode").End(j.handle(ctx, t))
}

func (j *GeocodeJob) handle(ctx context.Context, t *asynq.Task) error {
	var payload ShipmentGeocodePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.ShipmentID == "" {
		return asynq.SkipRetry
	}

	sh, err := j.shipments.Get(ctx, payload.ShipmentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Deleted before the worker got to it.
			return nil
		}
		return err
	}
	if sh.Address != "" || (sh.Latitude == 0 && sh.Longitude == 0) {
		return nil
	}

	place, ok, err := j.geocoder.Reverse(ctx, sh.Latitude, sh.Longitude)
	if err != nil {
		return err
	}
	if !ok {
		j.logger.Info("no address for coordinate",
			slog.String("shipment", sh.ID),
			slog.Float64("lat", sh.Latitude),
			slog.Float64("lng", sh.Longitude))
		return nil
	}
	return j.shipments.ApplyGeocodedAddress(ctx, sh.ID, place.DisplayName)
}

// HandleBackfill processes TaskTypeGeocodeBackfill tasks. It sweeps all
// shipments missing an address and resolves them with bounded concurrency.
func (j *GeocodeJob) HandleBackfill(ctx context.Context, t *asynq.Task) error {
	return j.metrics.Track("shipment_geocode_backfill").End(j.handleBackfill(ctx, t))
}

func (j *GeocodeJob) handleBackfill(ctx context.Context, _ *asynq.Task) error {
	all, err := j.shipments.List(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, sh := range all {
		if sh.Address != "" || (sh.Latitude == 0 && sh.Longitude == 0) {
			continue
		}
		sh := sh
		g.Go(func() error {
			place, ok, err := j.geocoder.Reverse(ctx, sh.Latitude, sh.Longitude)
			if err != nil || !ok {
				if err != nil {
					j.logger.Warn("reverse geocode", slog.String("shipment", sh.ID), slog.Any("error", err))
				}
				return nil
			}
			return j.shipments.ApplyGeocodedAddress(ctx, sh.ID, place.DisplayName)
		})
	}
	return g.Wait()
}
