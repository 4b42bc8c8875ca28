package model

import "time"

// CustomerStatus tracks where a customer sits in the sales funnel.
type CustomerStatus string

const (
	CustomerStatusProspect CustomerStatus = "Prospect"
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

// IsValid reports whether the status is one of the known values.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusProspect, CustomerStatusActive, CustomerStatusInactive:
		return true
	default:
		return false
	}
}

// Customer is a dealer account, prospective or active.
type Customer struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Phone  string         `json:"phone"`
	City   string         `json:"city"`
	Status CustomerStatus `json:"status"`
}

// InventoryItem is a stocked product. SKU is the natural key; there is
// no generated id. Stock is mutated only by order reconciliation.
type InventoryItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
}

// OrderStatus enumerates the order lifecycle.
type OrderStatus string

const (
	OrderStatusGenerated OrderStatus = "Generated"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusGenerated, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// LineItem is a (sku, quantity, price) tuple within an order. Name and
// category are denormalised from the inventory item at commit time.
type LineItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a sales order. Subtotal, Tax and Total are recomputed
// authoritatively on every create or edit.
type Order struct {
	ID               string      `json:"id"`
	CreatedAt        time.Time   `json:"createdAt"`
	CustomerID       string      `json:"customerId"`
	BuyerName        string      `json:"buyerName"`
	BuyerCompany     string      `json:"buyerCompany"`
	RequiresShipping bool        `json:"requiresShipping"`
	ShippingCost     float64     `json:"shippingCost"`
	TaxPercent       float64     `json:"taxPercent"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	Items            []LineItem  `json:"items"`
	Status           OrderStatus `json:"status"`
}

// ShipmentType distinguishes local deliveries from remote ranch runs.
type ShipmentType string

const (
	ShipmentTypeLocal  ShipmentType = "Local"
	ShipmentTypeRemote ShipmentType = "Remote"
)

// IsValid reports whether the type is one of the known values.
func (t ShipmentType) IsValid() bool {
	return t == ShipmentTypeLocal || t == ShipmentTypeRemote
}

// ShipmentStatus enumerates delivery progress.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Pending"
	ShipmentStatusInTransit ShipmentStatus = "InTransit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
)

// IsValid reports whether the status is one of the known values.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusDelivered:
		return true
	default:
		return false
	}
}

// Shipment is a scheduled delivery to a customer site.
type Shipment struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customerId"`
	Type       ShipmentType   `json:"type"`
	DistanceKm int            `json:"distanceKm"`
	Address    string         `json:"address"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Cost       float64        `json:"cost"`
	Status     ShipmentStatus `json:"status"`
}

// Categories lists the product categories offered on the inventory form.
var Categories = []string{"Básculas", "Corrales", "Baños", "Remolques", "Prensa", "Galeras"}
