package orders

import (
	"math"

	"github.com/campo-erp/campo-erp/internal/model"
)

// Pricing is the derived money breakdown of an order.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Quote derives subtotal, shipping, tax and total from line items and the
// order-level flags. Shipping cost and tax percentage are clamped to
// non-negative; NaN is treated as zero. Recomputed for live display and
// again at submit time as the persisted authoritative value.
func Quote(items []model.LineItem, requiresShipping bool, shippingCost, taxPercent float64) Pricing {
	subtotal := 0.0
	for _, li := range items {
		subtotal += float64(li.Quantity) * li.Price
	}
	shipping := 0.0
	if requiresShipping {
		shipping = clamp(shippingCost)
	}
	taxable := subtotal + shipping
	tax := taxable * clamp(taxPercent) / 100
	return Pricing{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
