package jobs_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/geo"
	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shipments"
	"github.com/campo-erp/campo-erp/internal/store"
	"github.com/campo-erp/campo-erp/jobs"
	_ "github.com/campo-erp/campo-erp/testing"
)

type stubReverser struct {
	place geo.Place
	ok    bool
	err   error
	calls int
}

func (s *stubReverser) Reverse(ctx context.Context, lat, lng float64) (geo.Place, bool, error) {
	s.calls++
	return s.place, s.ok, s.err
}

func newJobFixture(t *testing.T) (*shipments.Service, *store.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := store.New(client, "", "", nil)
	svc := shipments.NewService(st, shipments.Estimator{BaseCost: 350, PerKm: 18}, nil, nil)
	return svc, st
}

func geocodeTask(t *testing.T, id string) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(jobs.ShipmentGeocodePayload{ShipmentID: id})
	require.NoError(t, err)
	return asynq.NewTask(jobs.TaskTypeShipmentGeocode, body)
}

func TestGeocodeFillsEmptyAddress(t *testing.T) {
	svc, st := newJobFixture(t)
	ctx := context.Background()

	var id string
	require.NoError(t, st.Update(ctx, func(s *store.State) error {
		sh := model.Shipment{ID: "E-AB12CD", CustomerID: "C-001", Type: model.ShipmentTypeLocal,
			Latitude: 20.52, Longitude: -103.41, Status: model.ShipmentStatusPending}
		s.Shipments = append(s.Shipments, sh)
		id = sh.ID
		return nil
	}))

	rev := &stubReverser{place: geo.Place{DisplayName: "Carretera a El Salto km 12, Jalisco"}, ok: true}
	job := jobs.NewGeocodeJob(svc, rev, nil, nil)

	require.NoError(t, job.Handle(ctx, geocodeTask(t, id)))
	require.Equal(t, 1, rev.calls)

	sh, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Carretera a El Salto km 12, Jalisco", sh.Address)
}

func TestGeocodeLeavesFilledAddressAlone(t *testing.T) {
	svc, st := newJobFixture(t)
	ctx := context.Background()

	require.NoError(t, st.Update(ctx, func(s *store.State) error {
		s.Shipments = append(s.Shipments, model.Shipment{ID: "E-FF0011", CustomerID: "C-001",
			Type: model.ShipmentTypeLocal, Address: "Bodega central", Latitude: 20.52, Longitude: -103.41,
			Status: model.ShipmentStatusPending})
		return nil
	}))

	rev := &stubReverser{place: geo.Place{DisplayName: "somewhere else"}, ok: true}
	job := jobs.NewGeocodeJob(svc, rev, nil, nil)

	require.NoError(t, job.Handle(ctx, geocodeTask(t, "E-FF0011")))
	require.Zero(t, rev.calls)

	sh, err := svc.Get(ctx, "E-FF0011")
	require.NoError(t, err)
	require.Equal(t, "Bodega central", sh.Address)
}

func TestGeocodeIgnoresDeletedShipment(t *testing.T) {
	svc, _ := newJobFixture(t)

	rev := &stubReverser{ok: true}
	job := jobs.NewGeocodeJob(svc, rev, nil, nil)

	require.NoError(t, job.Handle(context.Background(), geocodeTask(t, "E-MISSING")))
	require.Zero(t, rev.calls)
}

func TestGeocodeBackfillSweepsMissingAddresses(t *testing.T) {
	svc, st := newJobFixture(t)
	ctx := context.Background()

	require.NoError(t, st.Update(ctx, func(s *store.State) error {
		s.Shipments = append(s.Shipments,
			model.Shipment{ID: "E-100000", CustomerID: "C-001", Type: model.ShipmentTypeRemote,
				Latitude: 25.68, Longitude: -100.31, Status: model.ShipmentStatusPending},
			model.Shipment{ID: "E-200000", CustomerID: "C-001", Type: model.ShipmentTypeLocal,
				Address: "ya capturada", Latitude: 20.52, Longitude: -103.41, Status: model.ShipmentStatusPending},
			model.Shipment{ID: "E-300000", CustomerID: "C-001", Type: model.ShipmentTypeLocal,
				Status: model.ShipmentStatusPending},
		)
		return nil
	}))

	rev := &stubReverser{place: geo.Place{DisplayName: "Av. Universidad 500, Monterrey"}, ok: true}
	job := jobs.NewGeocodeJob(svc, rev, nil, nil)

	require.NoError(t, job.HandleBackfill(ctx, asynq.NewTask(jobs.TaskTypeGeocodeBackfill, nil)))
	require.Equal(t, 1, rev.calls)

	sh, err := svc.Get(ctx, "E-100000")
	require.NoError(t, err)
	require.Equal(t, "Av. Universidad 500, Monterrey", sh.Address)

	untouched, err := svc.Get(ctx, "E-200000")
	require.NoError(t, err)
	require.Equal(t, "ya capturada", untouched.Address)
}
