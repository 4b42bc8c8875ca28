package shipments

import "github.com/campo-erp/campo-erp/internal/model"

// CreateShipmentInput describes a new scheduled delivery. When coordinates
// are present the distance is derived from them against the dealership
// origin; otherwise the manually entered kilometres are kept.
type CreateShipmentInput struct {
	CustomerID string               `json:"customerId" validate:"required"`
	Type       model.ShipmentType   `json:"type"`
	Address    string               `json:"address"`
	Latitude   float64              `json:"latitude"`
	Longitude  float64              `json:"longitude"`
	DistanceKm int                  `json:"distanceKm" validate:"gte=0"`
	Status     model.ShipmentStatus `json:"status"`
}

// StatusInput carries a status transition.
type StatusInput struct {
	Status model.ShipmentStatus `json:"status" validate:"required"`
}

// EstimateInput feeds the live distance/cost preview while the marker is
// being dragged.
type EstimateInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Estimate is the derived distance and cost for a destination.
type Estimate struct {
	DistanceKm int     `json:"distanceKm"`
	Cost       float64 `json:"cost"`
}
