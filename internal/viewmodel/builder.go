package viewmodel

import (
	"context"
	"fmt"

	"github.com/campo-erp/campo-erp/internal/model"
	"github.com/campo-erp/campo-erp/internal/money"
	"github.com/campo-erp/campo-erp/internal/store"
)

// Builder assembles view snapshots from the persisted aggregate. Each
// Build loads the state once; the returned snapshot never aliases it.
type Builder struct {
	store             *store.Store
	defaultTaxPercent float64
}

// NewBuilder builds Builder.
func NewBuilder(st *store.Store, defaultTaxPercent float64) *Builder {
	return &Builder{store: st, defaultTaxPercent: defaultTaxPercent}
}

// Build resolves the fragment and assembles its snapshot.
func (b *Builder) Build(ctx context.Context, rawFragment string) (Snapshot, error) {
	st, err := b.store.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	auth := b.store.LoadAuth(ctx)

	fragment := Resolve(rawFragment)
	snap := Snapshot{
		Fragment: fragment,
		LoggedIn: auth.LoggedIn,
		Pills: Pills{
			Customers: len(st.Customers),
			Inventory: len(st.Inventory),
			Orders:    len(st.Orders),
			Shipments: len(st.Shipments),
		},
	}

	switch fragment {
	case FragmentCustomers:
		snap.Title, snap.Subtitle = "Customers", "Accounts and prospects"
		snap.Customers = buildCustomers(st)
	case FragmentInventory:
		snap.Title, snap.Subtitle = "Inventory", "Products, stock and prices"
		snap.Inventory = buildInventory(st)
	case FragmentSales:
		snap.Title, snap.Subtitle = "Sales", "Orders and quotes"
		snap.Sales = buildSales(st, b.defaultTaxPercent)
	case FragmentShipments:
		snap.Title, snap.Subtitle = "Shipments", "Pending deliveries"
		snap.Shipments = buildShipments(st)
	default:
		snap.Title, snap.Subtitle = "Dashboard", "Operations summary"
		snap.Dashboard = buildDashboard(st)
	}
	return snap, nil
}

func buildDashboard(st store.State) *DashboardView {
	units := 0
	soldOut := 0
	value := 0.0
	for _, it := range st.Inventory {
		units += it.Stock
		if it.Stock <= 0 {
			soldOut++
		}
		value += float64(it.Stock) * it.Price
	}
	return &DashboardView{
		CustomerCount:  len(st.Customers),
		UnitsInStock:   units,
		SoldOutSKUs:    soldOut,
		OrderCount:     len(st.Orders),
		InventoryValue: money.Format(value),
	}
}

func buildCustomers(st store.State) *CustomersView {
	rows := make([]CustomerRow, 0, len(st.Customers))
	for _, c := range st.Customers {
		rows = append(rows, CustomerRow{
			ID:     c.ID,
			Name:   c.Name,
			Phone:  orDash(c.Phone),
			City:   orDash(c.City),
			Status: string(c.Status),
		})
	}
	return &CustomersView{
		StatusOptions: statusOptions(model.CustomerStatusProspect, model.CustomerStatusActive, model.CustomerStatusInactive),
		Rows:          rows,
	}
}

func buildInventory(st store.State) *InventoryView {
	rows := make([]InventoryRow, 0, len(st.Inventory))
	units := 0
	for _, it := range st.Inventory {
		units += it.Stock
		rows = append(rows, InventoryRow{
			SKU:      it.SKU,
			Name:     it.Name,
			Category: it.Category,
			Stock:    it.Stock,
			Price:    money.Format(it.Price),
		})
	}
	categories := make([]Option, 0, len(model.Categories))
	for _, c := range model.Categories {
		categories = append(categories, Option{Value: c, Label: c})
	}
	return &InventoryView{
		CategoryOptions: categories,
		Rows:            rows,
		TotalSKUs:       len(st.Inventory),
		TotalUnits:      units,
	}
}

func buildSales(st store.State, defaultTaxPercent float64) *SalesView {
	rows := make([]OrderRow, 0, len(st.Orders))
	for _, o := range st.Orders {
		rows = append(rows, OrderRow{
			ID:        o.ID,
			Customer:  customerLabel(st.Customers, o.CustomerID),
			ItemCount: len(o.Items),
			Total:     money.Format(o.Total),
			Status:    string(o.Status),
		})
	}
	return &SalesView{
		CustomerOptions:   customerOptions(st.Customers),
		StatusOptions:     statusOptions(model.OrderStatusGenerated, model.OrderStatusPaid, model.OrderStatusCancelled),
		DefaultTaxPercent: defaultTaxPercent,
		Rows:              rows,
	}
}

func buildShipments(st store.State) *ShipmentsView {
	rows := make([]ShipmentRow, 0, len(st.Shipments))
	for _, sh := range st.Shipments {
		rows = append(rows, ShipmentRow{
			ID:          sh.ID,
			Customer:    customerLabel(st.Customers, sh.CustomerID),
			Type:        string(sh.Type),
			DistanceKm:  sh.DistanceKm,
			Coordinates: fmt.Sprintf("%.3f, %.3f", sh.Latitude, sh.Longitude),
			Cost:        money.Format(sh.Cost),
			Status:      string(sh.Status),
		})
	}
	return &ShipmentsView{
		CustomerOptions: customerOptions(st.Customers),
		TypeOptions:     statusOptions(model.ShipmentTypeLocal, model.ShipmentTypeRemote),
		StatusOptions:   statusOptions(model.ShipmentStatusPending, model.ShipmentStatusInTransit, model.ShipmentStatusDelivered),
		Rows:            rows,
	}
}

func customerOptions(customers []model.Customer) []Option {
	opts := make([]Option, 0, len(customers))
	for _, c := range customers {
		opts = append(opts, Option{Value: c.ID, Label: fmt.Sprintf("%s · %s", c.ID, c.Name)})
	}
	return opts
}

// customerLabel falls back to the raw id when the customer was deleted.
func customerLabel(customers []model.Customer, id string) string {
	for _, c := range customers {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

func statusOptions[T ~string](values ...T) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: string(v), Label: string(v)})
	}
	return opts
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
