package domain

import (
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// LineItem is one priced component of the order.
type LineItem struct {
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity,omitempty"`
	Details      string  `json:"details,omitempty"`
	Waived       bool    `json:"waived,omitempty"`
	WaiverReason string  `json:"waiver_reason,omitempty"`
}

// UnresolvedComponent marks a selection whose price row could not be found.
// The cost contribution is zero; the marker lets audits tell "free" from
// "lookup failed".
type UnresolvedComponent struct {
	Category pricelistdomain.Category `json:"category"`
	Name     string                   `json:"name"`
}

// CostBreakdown is the itemized output of one calculation.
type CostBreakdown struct {
	BaseProductCost float64 `json:"base_product_cost"`
	BaseUnitPrice   float64 `json:"base_unit_price"`

	Decorations    []LineItem `json:"decorations"`
	MoldCharges    []LineItem `json:"mold_charges"`
	Accessories    []LineItem `json:"accessories"`
	Closures       []LineItem `json:"closures"`
	PremiumFabrics []LineItem `json:"premium_fabrics"`
	Delivery       []LineItem `json:"delivery"`

	Unresolved []UnresolvedComponent `json:"unresolved,omitempty"`

	TotalUnits int     `json:"total_units"`
	TotalCost  float64 `json:"total_cost"`
}

func sumItems(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Cost
	}
	return total
}

// LineItemSum is the cost of every component list, base product excluded.
// Waived mold charges carry zero cost and therefore contribute nothing.
func (b CostBreakdown) LineItemSum() float64 {
	return sumItems(b.Decorations) +
		sumItems(b.MoldCharges) +
		sumItems(b.Accessories) +
		sumItems(b.Closures) +
		sumItems(b.PremiumFabrics) +
		sumItems(b.Delivery)
}

// Recalculate refreshes TotalCost from the parts. Run after any pass that
// mutates line costs, margin overlay included.
func (b *CostBreakdown) Recalculate() {
	b.TotalCost = round2(b.BaseProductCost + b.LineItemSum())
}

// Clone deep-copies the breakdown so an overlay pass can fail without
// corrupting the raw costs.
func (b CostBreakdown) Clone() CostBreakdown {
	out := b
	out.Decorations = append([]LineItem(nil), b.Decorations...)
	out.MoldCharges = append([]LineItem(nil), b.MoldCharges...)
	out.Accessories = append([]LineItem(nil), b.Accessories...)
	out.Closures = append([]LineItem(nil), b.Closures...)
	out.PremiumFabrics = append([]LineItem(nil), b.PremiumFabrics...)
	out.Delivery = append([]LineItem(nil), b.Delivery...)
	out.Unresolved = append([]UnresolvedComponent(nil), b.Unresolved...)
	return out
}
