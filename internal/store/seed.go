package store

import "github.com/campo-erp/campo-erp/internal/model"

// Seed returns the demo dataset used when no persisted state exists or the
// persisted blob cannot be parsed at all.
func Seed() State {
	return State{
		Customers: []model.Customer{
			{ID: "C-001", Name: "Rancho La Esperanza", Phone: "555-123-4567", City: "Guadalajara", Status: model.CustomerStatusActive},
			{ID: "C-002", Name: "Agropecuaria El Norte", Phone: "555-987-1122", City: "Monterrey", Status: model.CustomerStatusProspect},
		},
		Inventory: []model.InventoryItem{
			{SKU: "SKU-1001", Name: "Báscula ganadera 1100", Category: "Básculas", Stock: 2, Price: 125000},
			{SKU: "SKU-2001", Name: "Corral de manejo", Category: "Corrales", Stock: 1, Price: 98000},
			{SKU: "SKU-3001", Name: "Baño garrapaticida", Category: "Baños", Stock: 0, Price: 145000},
		},
		Orders: []model.Order{},
		Shipments: []model.Shipment{
			{ID: "E-001", CustomerID: "C-001", Type: model.ShipmentTypeLocal, DistanceKm: 18, Address: "Zona industrial", Latitude: 20.6736, Longitude: -103.3440, Cost: 674, Status: model.ShipmentStatusPending},
		},
	}
}
