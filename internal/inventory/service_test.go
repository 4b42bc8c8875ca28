package inventory_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/inventory"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
	_ "github.com/campo-erp/campo-erp/testing"
)

func newService(t *testing.T) *inventory.Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return inventory.NewService(store.New(client, "", "", nil))
}

func TestCreateAndList(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, inventory.CreateItemInput{
		SKU: "SKU-4001", Name: "Remolque ganadero 16ft", Category: "Remolques", Stock: 3, Price: 210000,
	})
	require.NoError(t, err)
	require.Equal(t, "SKU-4001", item.SKU)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	// New entries are prepended ahead of the seed rows.
	require.Equal(t, "SKU-4001", items[0].SKU)
	require.Len(t, items, 4)
}

func TestCreateDuplicateSKURejected(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), inventory.CreateItemInput{
		SKU: "SKU-1001", Name: "Duplicada", Category: "Básculas",
	})
	require.ErrorIs(t, err, shared.ErrConflict)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "SKU-1001"))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.ErrorIs(t, svc.Delete(ctx, "SKU-1001"), shared.ErrNotFound)
}
