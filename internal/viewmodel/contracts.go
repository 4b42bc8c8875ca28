package viewmodel

// Fragment names a navigable view. It mirrors the URL fragment the
// original single-page UI dispatched on.
type Fragment string

const (
	FragmentDashboard Fragment = "dashboard"
	FragmentCustomers Fragment = "customers"
	FragmentInventory Fragment = "inventory"
	FragmentSales     Fragment = "sales"
	FragmentShipments Fragment = "shipments"
)

// Resolve maps a raw navigation fragment to a view. Empty or unknown
// fragments resolve to the dashboard.
func Resolve(raw string) Fragment {
	switch Fragment(raw) {
	case FragmentCustomers, FragmentInventory, FragmentSales, FragmentShipments:
		return Fragment(raw)
	default:
		return FragmentDashboard
	}
}

// Option is a select-control entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Pills carries the per-section entity counts shown in the navigation.
type Pills struct {
	Customers int `json:"customers"`
	Inventory int `json:"inventory"`
	Orders    int `json:"orders"`
	Shipments int `json:"shipments"`
}

// Snapshot is an immutable per-render view model: form state, table rows
// and computed totals for exactly one view, plus the shared navigation
// counts. It carries no rendering technology of its own.
type Snapshot struct {
	Fragment Fragment `json:"fragment"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	LoggedIn bool     `json:"loggedIn"`
	Pills    Pills    `json:"pills"`

	Dashboard *DashboardView `json:"dashboard,omitempty"`
	Customers *CustomersView `json:"customers,omitempty"`
	Inventory *InventoryView `json:"inventory,omitempty"`
	Sales     *SalesView     `json:"sales,omitempty"`
	Shipments *ShipmentsView `json:"shipments,omitempty"`
}

// DashboardView summarises the operation.
type DashboardView struct {
	CustomerCount  int    `json:"customerCount"`
	UnitsInStock   int    `json:"unitsInStock"`
	SoldOutSKUs    int    `json:"soldOutSkus"`
	OrderCount     int    `json:"orderCount"`
	InventoryValue string `json:"inventoryValue"`
}

// CustomersView backs the customer screen.
type CustomersView struct {
	StatusOptions []Option      `json:"statusOptions"`
	Rows          []CustomerRow `json:"rows"`
}

// CustomerRow is one display-ready table line.
type CustomerRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Status string `json:"status"`
}

// InventoryView backs the inventory screen.
type InventoryView struct {
	CategoryOptions []Option       `json:"categoryOptions"`
	Rows            []InventoryRow `json:"rows"`
	TotalSKUs       int            `json:"totalSkus"`
	TotalUnits      int            `json:"totalUnits"`
}

// InventoryRow is one display-ready table line.
type InventoryRow struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Price    string `json:"price"`
}

// SalesView backs the sales-order screen.
type SalesView struct {
	CustomerOptions   []Option   `json:"customerOptions"`
	StatusOptions     []Option   `json:"statusOptions"`
	DefaultTaxPercent float64    `json:"defaultTaxPercent"`
	Rows              []OrderRow `json:"rows"`
}

// OrderRow is one display-ready table line.
type OrderRow struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	ItemCount int    `json:"itemCount"`
	Total     string `json:"total"`
	Status    string `json:"status"`
}

// ShipmentsView backs the shipment screen.
type ShipmentsView struct {
	CustomerOptions []Option      `json:"customerOptions"`
	TypeOptions     []Option      `json:"typeOptions"`
	StatusOptions   []Option      `json:"statusOptions"`
	Rows            []ShipmentRow `json:"rows"`
}

// ShipmentRow is one display-ready table line.
type ShipmentRow struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	Type        string `json:"type"`
	DistanceKm  int    `json:"distanceKm"`
	Coordinates string `json:"coordinates"`
	Cost        string `json:"cost"`
	Status      string `json:"status"`
}
