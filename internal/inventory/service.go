package inventory

import (
	"context"
	"fmt"

	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Service manages the inventory collection. Stock levels are never edited
// directly here; only order reconciliation moves them.
type Service struct {
	store *store.Store
}

// NewService builds Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all inventory items.
func (s *Service) List(ctx context.Context) ([]model.InventoryItem, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Inventory, nil
}

// Create registers a new SKU. The SKU is the natural key; duplicates are
// rejected.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (model.InventoryItem, error) {
	item := model.InventoryItem{
		SKU:      input.SKU,
		Name:     input.Name,
		Category: input.Category,
		Stock:    input.Stock,
		Price:    input.Price,
	}
	err := s.store.Update(ctx, func(st *store.State) error {
		for _, existing := range st.Inventory {
			if existing.SKU == item.SKU {
				return fmt.Errorf("inventory: sku %s: %w", item.SKU, shared.ErrConflict)
			}
		}
		st.Inventory = append([]model.InventoryItem{item}, st.Inventory...)
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

// Delete removes an item by SKU.
func (s *Service) Delete(ctx context.Context, sku string) error {
	return s.store.Update(ctx, func(st *store.State) error {
		kept := st.Inventory[:0]
		found := false
		for _, it := range st.Inventory {
			if it.SKU == sku {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		if !found {
			return fmt.Errorf("inventory: sku %s: %w", sku, shared.ErrNotFound)
		}
		st.Inventory = kept
		return nil
	})
}
