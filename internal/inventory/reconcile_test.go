package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campo-erp/campo-erp/internal/model"
)

func itemsFixture() []model.InventoryItem {
	return []model.InventoryItem{
		{SKU: "SKU-1001", Name: "Báscula ganadera 1100", Stock: 2, Price: 125000},
		{SKU: "SKU-2001", Name: "Corral de manejo", Stock: 1, Price: 98000},
		{SKU: "SKU-3001", Name: "Baño garrapaticida", Stock: 0, Price: 145000},
	}
}

func line(sku string, qty int) model.LineItem {
	return model.LineItem{SKU: sku, Quantity: qty}
}

func TestDiff(t *testing.T) {
	prev := []model.LineItem{line("SKU-1001", 2), line("SKU-2001", 1)}
	next := []model.LineItem{line("SKU-1001", 1), line("SKU-3001", 4)}

	deltas := Diff(prev, next)
	require.Equal(t, map[string]int{"SKU-1001": -1, "SKU-2001": -1, "SKU-3001": 4}, deltas)
}

func TestDiffDropsZeroDeltas(t *testing.T) {
	prev := []model.LineItem{line("SKU-1001", 2)}
	next := []model.LineItem{line("SKU-1001", 2)}
	require.Empty(t, Diff(prev, next))
}

func TestReconcileNewOrderDeductsStock(t *testing.T) {
	items := itemsFixture()
	err := Reconcile(items, nil, []model.LineItem{line("SKU-1001", 2), line("SKU-2001", 1)})
	require.NoError(t, err)
	require.Equal(t, 0, items[0].Stock)
	require.Equal(t, 0, items[1].Stock)
}

func TestReconcileShortfallFailsWithoutMutation(t *testing.T) {
	items := itemsFixture()
	err := Reconcile(items, nil, []model.LineItem{line("SKU-1001", 5)})
	require.ErrorIs(t, err, ErrInsufficientStock)

	var shortfall *ShortfallError
	require.True(t, errors.As(err, &shortfall))
	require.Equal(t, "SKU-1001", shortfall.SKU)
	require.Equal(t, 5, shortfall.Requested)
	require.Equal(t, 2, shortfall.Available)
	require.Equal(t, 3, shortfall.Shortfall())

	require.Equal(t, itemsFixture(), items)
}

func TestReconcileAtomicAcrossSKUs(t *testing.T) {
	items := itemsFixture()
	// SKU-1001 is satisfiable but SKU-3001 is not; nothing may move.
	err := Reconcile(items, nil, []model.LineItem{line("SKU-1001", 1), line("SKU-3001", 1)})
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Equal(t, itemsFixture(), items)
}

func TestReconcileUnknownSKU(t *testing.T) {
	items := itemsFixture()
	err := Reconcile(items, nil, []model.LineItem{line("SKU-9999", 1)})
	require.ErrorIs(t, err, ErrUnknownSKU)
	require.Equal(t, itemsFixture(), items)
}

func TestReconcileEditMovesOnlyTheDelta(t *testing.T) {
	items := itemsFixture()
	prev := []model.LineItem{line("SKU-1001", 2)}
	require.NoError(t, Reconcile(items, nil, prev))
	require.Equal(t, 0, items[0].Stock)

	// Edit down to one unit: one unit returns.
	next := []model.LineItem{line("SKU-1001", 1)}
	require.NoError(t, Reconcile(items, prev, next))
	require.Equal(t, 1, items[0].Stock)
}

func TestReleaseReturnsEverything(t *testing.T) {
	items := itemsFixture()
	orderItems := []model.LineItem{line("SKU-1001", 2), line("SKU-2001", 1)}
	require.NoError(t, Reconcile(items, nil, orderItems))
	require.NoError(t, Release(items, orderItems))
	require.Equal(t, itemsFixture(), items)
}

func TestEditRoundTripRestoresStock(t *testing.T) {
	items := itemsFixture()
	orderItems := []model.LineItem{line("SKU-1001", 1), line("SKU-2001", 1)}
	require.NoError(t, Reconcile(items, nil, orderItems))

	before := append([]model.InventoryItem(nil), items...)

	// Remove all items, then re-add the identical set.
	require.NoError(t, Reconcile(items, orderItems, nil))
	require.NoError(t, Reconcile(items, nil, orderItems))
	require.Equal(t, before, items)
}

func TestNoOversellAcrossSequence(t *testing.T) {
	items := []model.InventoryItem{{SKU: "SKU-1001", Stock: 3}}
	var committed []model.LineItem
	sold := 0
	for _, qty := range []int{1, 1, 1, 1, 1} {
		next := append(append([]model.LineItem(nil), committed...), line("SKU-1001", qty))
		if err := Reconcile(items, committed, next); err != nil {
			require.ErrorIs(t, err, ErrInsufficientStock)
			continue
		}
		committed = next
		sold += qty
	}
	require.Equal(t, 3, sold)
	require.Equal(t, 0, items[0].Stock)
}

func TestReconcileReturnForDeletedSKUIsDropped(t *testing.T) {
	items := []model.InventoryItem{{SKU: "SKU-1001", Stock: 1}}
	prev := []model.LineItem{line("SKU-GONE", 2)}
	require.NoError(t, Reconcile(items, prev, nil))
	require.Equal(t, 1, items[0].Stock)
}
