package viewmodel_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/store"
	"github.com/campo-erp/campo-erp/internal/viewmodel"
	_ "github.com/campo-erp/campo-erp/testing"
)

func newBuilder(t *testing.T) *viewmodel.Builder {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return viewmodel.NewBuilder(store.New(client, "", "", nil), 16)
}

func TestResolve(t *testing.T) {
	require.Equal(t, viewmodel.FragmentDashboard, viewmodel.Resolve(""))
	require.Equal(t, viewmodel.FragmentDashboard, viewmodel.Resolve("nope"))
	require.Equal(t, viewmodel.FragmentSales, viewmodel.Resolve("sales"))
	require.Equal(t, viewmodel.FragmentShipments, viewmodel.Resolve("shipments"))
}

func TestBuildDashboardFromSeed(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, viewmodel.FragmentDashboard, snap.Fragment)
	require.NotNil(t, snap.Dashboard)
	require.Equal(t, 2, snap.Dashboard.CustomerCount)
	require.Equal(t, 3, snap.Dashboard.UnitsInStock)
	require.Equal(t, 1, snap.Dashboard.SoldOutSKUs)
	// 2×125000 + 1×98000
	require.Equal(t, "$348,000", snap.Dashboard.InventoryValue)
	require.Equal(t, 2, snap.Pills.Customers)
	require.Equal(t, 3, snap.Pills.Inventory)
	require.Equal(t, 1, snap.Pills.Shipments)
}

func TestBuildUnknownFragmentFallsBackToDashboard(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "reports")
	require.NoError(t, err)
	require.Equal(t, viewmodel.FragmentDashboard, snap.Fragment)
	require.NotNil(t, snap.Dashboard)
	require.Nil(t, snap.Customers)
}

func TestBuildCustomersView(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "customers")
	require.NoError(t, err)
	require.NotNil(t, snap.Customers)
	require.Len(t, snap.Customers.Rows, 2)
	require.Equal(t, "Rancho La Esperanza", snap.Customers.Rows[0].Name)
	require.Len(t, snap.Customers.StatusOptions, 3)
}

func TestBuildInventoryViewFormatsMoney(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "inventory")
	require.NoError(t, err)
	require.NotNil(t, snap.Inventory)
	require.Equal(t, "$125,000", snap.Inventory.Rows[0].Price)
	require.Equal(t, 3, snap.Inventory.TotalSKUs)
	require.Equal(t, 3, snap.Inventory.TotalUnits)
	require.Len(t, snap.Inventory.CategoryOptions, 6)
}

func TestBuildShipmentsView(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "shipments")
	require.NoError(t, err)
	require.NotNil(t, snap.Shipments)
	require.Len(t, snap.Shipments.Rows, 1)
	row := snap.Shipments.Rows[0]
	require.Equal(t, "Rancho La Esperanza", row.Customer)
	require.Equal(t, "20.674, -103.344", row.Coordinates)
	require.Equal(t, 18, row.DistanceKm)
}

func TestBuildSalesViewOptions(t *testing.T) {
	b := newBuilder(t)
	snap, err := b.Build(context.Background(), "sales")
	require.NoError(t, err)
	require.NotNil(t, snap.Sales)
	require.Empty(t, snap.Sales.Rows)
	require.Equal(t, 16.0, snap.Sales.DefaultTaxPercent)
	require.Equal(t, "C-001 · Rancho La Esperanza", snap.Sales.CustomerOptions[0].Label)
}
