package inventory

import (
	"errors"
	"fmt"
)

// ErrInsufficientStock triggered when a net additional demand exceeds the
// available stock for a SKU.
var ErrInsufficientStock = errors.New("inventory: insufficient stock")

// ErrUnknownSKU indicates a line item references a SKU with no inventory record.
var ErrUnknownSKU = errors.New("inventory: unknown sku")

// ShortfallError reports which SKU could not satisfy a requested delta and
// by how much. It unwraps to ErrInsufficientStock.
type ShortfallError struct {
	SKU       string
	Requested int
	Available int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("inventory: insufficient stock for %s: requested %d, available %d (short %d)",
		e.SKU, e.Requested, e.Available, e.Shortfall())
}

// Shortfall is the number of missing units.
func (e *ShortfallError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *ShortfallError) Unwrap() error {
	return ErrInsufficientStock
}

// CreateItemInput describes a new SKU.
type CreateItemInput struct {
	SKU      string  `json:"sku" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}
