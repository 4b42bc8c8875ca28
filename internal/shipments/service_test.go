package shipments_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/shipments"
	"github.com/campo-erp/campo-erp/internal/store"
	_ "github.com/campo-erp/campo-erp/testing"
)

type captureEnqueuer struct {
	ids []string
}

func (c *captureEnqueuer) EnqueueShipmentGeocode(ctx context.Context, shipmentID string) error {
	c.ids = append(c.ids, shipmentID)
	return nil
}

func newFixture(t *testing.T) (*shipments.Service, *captureEnqueuer) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := store.New(client, "", "", nil)
	est := shipments.Estimator{Origin: shipments.Coordinate{Lat: 20.6736, Lng: -103.3440}, BaseCost: 350, PerKm: 18}
	enq := &captureEnqueuer{}
	return shipments.NewService(st, est, enq, nil), enq
}

func TestCreateDerivesDistanceFromCoordinates(t *testing.T) {
	svc, _ := newFixture(t)
	sh, err := svc.Create(context.Background(), shipments.CreateShipmentInput{
		CustomerID: "C-001",
		Type:       model.ShipmentTypeRemote,
		Address:    "Carretera a Chapala km 17",
		Latitude:   20.5230,
		Longitude:  -103.3110,
		DistanceKm: 3, // overridden by the coordinate
	})
	require.NoError(t, err)
	require.Greater(t, sh.DistanceKm, 10)
	require.InDelta(t, 350+float64(sh.DistanceKm)*18, sh.Cost, 0.0001)
	require.Equal(t, model.ShipmentStatusPending, sh.Status)
}

func TestCreateKeepsManualKilometresWithoutCoordinates(t *testing.T) {
	svc, _ := newFixture(t)
	sh, err := svc.Create(context.Background(), shipments.CreateShipmentInput{
		CustomerID: "C-001",
		DistanceKm: 25,
	})
	require.NoError(t, err)
	require.Equal(t, 25, sh.DistanceKm)
	require.InDelta(t, 350+25*18, sh.Cost, 0.0001)
}

func TestCreateUnknownCustomer(t *testing.T) {
	svc, _ := newFixture(t)
	_, err := svc.Create(context.Background(), shipments.CreateShipmentInput{CustomerID: "C-404"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateQueuesGeocodeWhenAddressEmpty(t *testing.T) {
	svc, enq := newFixture(t)
	sh, err := svc.Create(context.Background(), shipments.CreateShipmentInput{
		CustomerID: "C-001",
		Latitude:   20.6736,
		Longitude:  -103.3440,
	})
	require.NoError(t, err)
	require.Equal(t, []string{sh.ID}, enq.ids)

	// An entry with an address does not enqueue.
	_, err = svc.Create(context.Background(), shipments.CreateShipmentInput{
		CustomerID: "C-001",
		Address:    "Zona industrial",
		Latitude:   20.6736,
		Longitude:  -103.3440,
	})
	require.NoError(t, err)
	require.Len(t, enq.ids, 1)
}

func TestSetStatusAndDelete(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	sh, err := svc.SetStatus(ctx, "E-001", model.ShipmentStatusInTransit)
	require.NoError(t, err)
	require.Equal(t, model.ShipmentStatusInTransit, sh.Status)

	_, err = svc.SetStatus(ctx, "E-001", "Lost")
	require.Error(t, err)

	require.NoError(t, svc.Delete(ctx, "E-001"))
	require.ErrorIs(t, svc.Delete(ctx, "E-001"), shared.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
