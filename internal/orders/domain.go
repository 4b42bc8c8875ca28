package orders

import (
	"errors"

	"github.com/campo-erp/campo-erp/internal/model"
)

// ErrOrderCancelled indicates an edit was attempted on a cancelled order.
// Cancelled orders hold no stock, so re-activate first.
var ErrOrderCancelled = errors.New("orders: cancelled order cannot be edited")

// ErrNoItems indicates an order without line items.
var ErrNoItems = errors.New("orders: at least one line item required")

// LineInput references a SKU and quantity. Name, category and unit price
// are taken from the inventory record at commit time, not from the client.
type LineInput struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderInput describes a new sales order.
type CreateOrderInput struct {
	CustomerID       string      `json:"customerId" validate:"required"`
	BuyerName        string      `json:"buyerName"`
	BuyerCompany     string      `json:"buyerCompany"`
	RequiresShipping bool        `json:"requiresShipping"`
	ShippingCost     float64     `json:"shippingCost"`
	TaxPercent       *float64    `json:"taxPercent"`
	Items            []LineInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderInput replaces an order's content wholesale; the edit modal
// sends the complete proposed state.
type UpdateOrderInput struct {
	CustomerID       string      `json:"customerId" validate:"required"`
	BuyerName        string      `json:"buyerName"`
	BuyerCompany     string      `json:"buyerCompany"`
	RequiresShipping bool        `json:"requiresShipping"`
	ShippingCost     float64     `json:"shippingCost"`
	TaxPercent       *float64    `json:"taxPercent"`
	Items            []LineInput `json:"items" validate:"required,min=1,dive"`
}

// StatusInput carries a status transition.
type StatusInput struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}

// QuoteInput feeds the live pricing preview.
type QuoteInput struct {
	Items            []LineInput `json:"items" validate:"required,min=1,dive"`
	RequiresShipping bool        `json:"requiresShipping"`
	ShippingCost     float64     `json:"shippingCost"`
	TaxPercent       float64     `json:"taxPercent"`
}
