package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/campo-erp/campo-erp/internal/inventory"
	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/shared"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Service coordinates sales orders: line-item resolution, stock
// reconciliation and pricing happen inside a single store mutation, so an
// order either commits with its stock deducted or not at all.
type Service struct {
	store             *store.Store
	defaultTaxPercent float64
}

// NewService builds Service.
func NewService(st *store.Store, defaultTaxPercent float64) *Service {
	return &Service{store: st, defaultTaxPercent: defaultTaxPercent}
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]model.Order, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Orders, nil
}

// Quote prices the proposed line items against current inventory without
// committing anything. Used for the live preview while the form changes.
func (s *Service) Quote(ctx context.Context, input QuoteInput) (Pricing, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return Pricing{}, err
	}
	items, err := resolveLines(st.Inventory, input.Items)
	if err != nil {
		return Pricing{}, err
	}
	return Quote(items, input.RequiresShipping, input.ShippingCost, input.TaxPercent), nil
}

// Create commits a new order, deducting stock for every line item.
func (s *Service) Create(ctx context.Context, input CreateOrderInput) (model.Order, error) {
	var created model.Order
	err := s.store.Update(ctx, func(st *store.State) error {
		if !customerExists(st.Customers, input.CustomerID) {
			return fmt.Errorf("orders: customer %s: %w", input.CustomerID, shared.ErrNotFound)
		}
		items, err := resolveLines(st.Inventory, input.Items)
		if err != nil {
			return err
		}
		if err := inventory.Reconcile(st.Inventory, nil, items); err != nil {
			return err
		}
		taxPercent := s.defaultTaxPercent
		if input.TaxPercent != nil {
			taxPercent = *input.TaxPercent
		}
		pricing := Quote(items, input.RequiresShipping, input.ShippingCost, taxPercent)
		created = model.Order{
			ID:               shared.NewID("O"),
			CreatedAt:        time.Now().UTC(),
			CustomerID:       input.CustomerID,
			BuyerName:        input.BuyerName,
			BuyerCompany:     input.BuyerCompany,
			RequiresShipping: input.RequiresShipping,
			ShippingCost:     pricing.Shipping,
			TaxPercent:       clamp(taxPercent),
			Subtotal:         pricing.Subtotal,
			Tax:              pricing.Tax,
			Total:            pricing.Total,
			Items:            items,
			Status:           model.OrderStatusGenerated,
		}
		st.Orders = append([]model.Order{created}, st.Orders...)
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

// Update replaces an order's content, reconciling old items against new in
// one call and repricing. Cancelled orders hold no stock and must be
// re-activated before editing.
func (s *Service) Update(ctx context.Context, id string, input UpdateOrderInput) (model.Order, error) {
	var updated model.Order
	err := s.store.Update(ctx, func(st *store.State) error {
		idx := orderIndex(st.Orders, id)
		if idx < 0 {
			return fmt.Errorf("orders: %s: %w", id, shared.ErrNotFound)
		}
		existing := st.Orders[idx]
		if existing.Status == model.OrderStatusCancelled {
			return ErrOrderCancelled
		}
		if !customerExists(st.Customers, input.CustomerID) {
			return fmt.Errorf("orders: customer %s: %w", input.CustomerID, shared.ErrNotFound)
		}
		items, err := resolveLines(st.Inventory, input.Items)
		if err != nil {
			return err
		}
		if err := inventory.Reconcile(st.Inventory, existing.Items, items); err != nil {
			return err
		}
		taxPercent := existing.TaxPercent
		if input.TaxPercent != nil {
			taxPercent = *input.TaxPercent
		}
		pricing := Quote(items, input.RequiresShipping, input.ShippingCost, taxPercent)
		updated = existing
		updated.CustomerID = input.CustomerID
		updated.BuyerName = input.BuyerName
		updated.BuyerCompany = input.BuyerCompany
		updated.RequiresShipping = input.RequiresShipping
		updated.ShippingCost = pricing.Shipping
		updated.TaxPercent = clamp(taxPercent)
		updated.Subtotal = pricing.Subtotal
		updated.Tax = pricing.Tax
		updated.Total = pricing.Total
		updated.Items = items
		st.Orders[idx] = updated
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}

// SetStatus transitions an order. Cancelling returns its consumed stock;
// re-activating a cancelled order deducts again and can fail on shortfall.
func (s *Service) SetStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	var updated model.Order
	err := s.store.Update(ctx, func(st *store.State) error {
		idx := orderIndex(st.Orders, id)
		if idx < 0 {
			return fmt.Errorf("orders: %s: %w", id, shared.ErrNotFound)
		}
		order := st.Orders[idx]
		wasCancelled := order.Status == model.OrderStatusCancelled
		nowCancelled := status == model.OrderStatusCancelled
		switch {
		case nowCancelled && !wasCancelled:
			if err := inventory.Release(st.Inventory, order.Items); err != nil {
				return err
			}
		case wasCancelled && !nowCancelled:
			if err := inventory.Reconcile(st.Inventory, nil, order.Items); err != nil {
				return err
			}
		}
		order.Status = status
		st.Orders[idx] = order
		updated = order
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}

// Delete removes an order, returning every unit it had deducted. Cancelled
// orders already returned their stock.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(st *store.State) error {
		idx := orderIndex(st.Orders, id)
		if idx < 0 {
			return fmt.Errorf("orders: %s: %w", id, shared.ErrNotFound)
		}
		order := st.Orders[idx]
		if order.Status != model.OrderStatusCancelled {
			if err := inventory.Release(st.Inventory, order.Items); err != nil {
				return err
			}
		}
		st.Orders = append(st.Orders[:idx], st.Orders[idx+1:]...)
		return nil
	})
}

// resolveLines turns SKU references into full line items priced from the
// current inventory records.
func resolveLines(items []model.InventoryItem, lines []LineInput) ([]model.LineItem, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	index := make(map[string]model.InventoryItem, len(items))
	for _, it := range items {
		index[it.SKU] = it
	}
	out := make([]model.LineItem, 0, len(lines))
	for _, ln := range lines {
		it, ok := index[ln.SKU]
		if !ok {
			return nil, fmt.Errorf("%w: %s", inventory.ErrUnknownSKU, ln.SKU)
		}
		out = append(out, model.LineItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Category: it.Category,
			Quantity: ln.Quantity,
			Price:    it.Price,
		})
	}
	return out, nil
}

func customerExists(customers []model.Customer, id string) bool {
	for _, c := range customers {
		if c.ID == id {
			return true
		}
	}
	return false
}

func orderIndex(orders []model.Order, id string) int {
	for i, o := range orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
