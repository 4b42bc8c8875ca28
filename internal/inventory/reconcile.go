package inventory

import (
	"fmt"
	"sort"

	"github.com/campo-erp/campo-erp/internal/model"
)

// Diff computes the signed per-SKU quantity delta between an order's
// previous and proposed line items (proposed minus previous). A new order
// passes prev = nil; a deletion passes next = nil.
func Diff(prev, next []model.LineItem) map[string]int {
	deltas := make(map[string]int)
	for _, li := range next {
		deltas[li.SKU] += li.Quantity
	}
	for _, li := range prev {
		deltas[li.SKU] -= li.Quantity
	}
	for sku, d := range deltas {
		if d == 0 {
			delete(deltas, sku)
		}
	}
	return deltas
}

// Reconcile validates and applies the line-item deltas against items in
// two passes. If any positive delta exceeds the SKU's current stock the
// whole call fails with a *ShortfallError and no mutation happens.
// Otherwise every delta commits: additional demand decrements stock,
// returned units increment it, clamped at zero.
func Reconcile(items []model.InventoryItem, prev, next []model.LineItem) error {
	deltas := Diff(prev, next)
	if len(deltas) == 0 {
		return nil
	}

	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.SKU] = i
	}

	// Deterministic ordering so the reported SKU is stable.
	skus := make([]string, 0, len(deltas))
	for sku := range deltas {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	// Pass 1: validate every net-positive delta.
	for _, sku := range skus {
		d := deltas[sku]
		if d <= 0 {
			continue
		}
		i, ok := index[sku]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSKU, sku)
		}
		if d > items[i].Stock {
			return &ShortfallError{SKU: sku, Requested: d, Available: items[i].Stock}
		}
	}

	// Pass 2: apply everything.
	for _, sku := range skus {
		i, ok := index[sku]
		if !ok {
			// Returned units for a SKU that no longer exists have nowhere
			// to go; the original dropped them the same way.
			continue
		}
		items[i].Stock -= deltas[sku]
		if items[i].Stock < 0 {
			items[i].Stock = 0
		}
	}
	return nil
}

// Release returns every unit an order had deducted, equivalent to
// reconciling its items against an empty proposed set.
func Release(items []model.InventoryItem, prev []model.LineItem) error {
	return Reconcile(items, prev, nil)
}
