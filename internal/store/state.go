package store

import (
	"encoding/json"

	"github.com/campo-erp/campo-erp/internal/model"
)

// State is the full persisted aggregate. It round-trips as a single JSON
// object; mutations replace the whole value (last writer wins).
type State struct {
	Customers []model.Customer      `json:"customers"`
	Inventory []model.InventoryItem `json:"inventory"`
	Orders    []model.Order         `json:"orders"`
	Shipments []model.Shipment      `json:"shipments"`
}

// Auth is the second persisted slot. Login is a plain flag; there are no
// credentials behind it.
type Auth struct {
	LoggedIn bool `json:"loggedIn"`
}

// Clone returns a deep copy so callers can mutate without aliasing the
// loaded value.
func (s State) Clone() State {
	out := State{
		Customers: append([]model.Customer(nil), s.Customers...),
		Inventory: append([]model.InventoryItem(nil), s.Inventory...),
		Orders:    make([]model.Order, 0, len(s.Orders)),
		Shipments: append([]model.Shipment(nil), s.Shipments...),
	}
	for _, o := range s.Orders {
		o.Items = append([]model.LineItem(nil), o.Items...)
		out.Orders = append(out.Orders, o)
	}
	return out
}

// decodeState deserialises a persisted blob defensively. A top-level parse
// failure surfaces as an error so the caller can fall back to the seed;
// a collection that fails to decode (wrong type, malformed entries) is
// coerced to an empty list on its own, leaving the other fields intact.
func decodeState(raw []byte) (State, error) {
	var fields struct {
		Customers json.RawMessage `json:"customers"`
		Inventory json.RawMessage `json:"inventory"`
		Orders    json.RawMessage `json:"orders"`
		Shipments json.RawMessage `json:"shipments"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return State{}, err
	}
	st := State{
		Customers: []model.Customer{},
		Inventory: []model.InventoryItem{},
		Orders:    []model.Order{},
		Shipments: []model.Shipment{},
	}
	if len(fields.Customers) > 0 {
		var v []model.Customer
		if err := json.Unmarshal(fields.Customers, &v); err == nil && v != nil {
			st.Customers = v
		}
	}
	if len(fields.Inventory) > 0 {
		var v []model.InventoryItem
		if err := json.Unmarshal(fields.Inventory, &v); err == nil && v != nil {
			st.Inventory = v
		}
	}
	if len(fields.Orders) > 0 {
		var v []model.Order
		if err := json.Unmarshal(fields.Orders, &v); err == nil && v != nil {
			st.Orders = v
		}
	}
	if len(fields.Shipments) > 0 {
		var v []model.Shipment
		if err := json.Unmarshal(fields.Shipments, &v); err == nil && v != nil {
			st.Shipments = v
		}
	}
	return st, nil
}
