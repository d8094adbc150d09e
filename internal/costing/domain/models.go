// Package domain defines the configuration input and cost breakdown output of
// the calculation engine.
package domain

import (
	"errors"
	"sort"
	"strings"

	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

var (
	ErrMissingQuantity  = errors.New("costing: configuration carries no units")
	ErrMissingBasePrice = errors.New("costing: configuration carries no base pricing")
)

// BaseTierPrices is an explicitly supplied tier-price object for the blank
// product, mirroring the catalog's quantity breaks.
type BaseTierPrices struct {
	Price48    float64 `json:"price_48"`
	Price144   float64 `json:"price_144"`
	Price576   float64 `json:"price_576"`
	Price1152  float64 `json:"price_1152"`
	Price2880  float64 `json:"price_2880"`
	Price10000 float64 `json:"price_10000"`
}

func (b BaseTierPrices) row() pricelistdomain.PriceRow {
	return pricelistdomain.PriceRow{
		Price48:    b.Price48,
		Price144:   b.Price144,
		Price576:   b.Price576,
		Price1152:  b.Price1152,
		Price2880:  b.Price2880,
		Price10000: b.Price10000,
	}
}

// UnitPriceAt resolves the blank-product unit price at a quantity using the
// shared break rule.
func (b BaseTierPrices) UnitPriceAt(quantity int) float64 {
	return b.row().UnitPriceAt(quantity)
}

// DecorationSelection names one logo setup on the product.
type DecorationSelection struct {
	Type        string `json:"type"`
	Position    string `json:"position,omitempty"`
	Size        string `json:"size,omitempty"`
	Application string `json:"application,omitempty"`
}

// ProductConfiguration is the fully-formed, caller-owned input to one
// calculation. Quantity may arrive as color→size→count buckets, a flat
// size→count map, or an explicit total.
type ProductConfiguration struct {
	ColorSizeCounts map[string]map[string]int `json:"color_size_counts,omitempty"`
	SizeCounts      map[string]int            `json:"size_counts,omitempty"`
	TotalUnits      int                       `json:"total_units,omitempty"`

	BasePrice *BaseTierPrices `json:"base_price,omitempty"`
	PriceTier string          `json:"price_tier,omitempty"`

	Decorations  []DecorationSelection `json:"decorations,omitempty"`
	Accessories  []string              `json:"accessories,omitempty"`
	Closure      string                `json:"closure,omitempty"`
	FabricSetup  string                `json:"fabric_setup,omitempty"`
	DeliveryType string                `json:"delivery_type,omitempty"`

	PriorOrderRef string `json:"prior_order_ref,omitempty"`
	// FreightQuantity is the combined-shipment volume. It widens the delivery
	// discount tier only; billing always uses this order's own units.
	FreightQuantity int `json:"freight_quantity,omitempty"`
}

// Units derives the total unit quantity: explicit total first, then the
// color/size buckets, then the flat size map.
func (c ProductConfiguration) Units() int {
	if c.TotalUnits > 0 {
		return c.TotalUnits
	}
	total := 0
	for _, sizes := range c.ColorSizeCounts {
		for _, count := range sizes {
			total += count
		}
	}
	if total > 0 {
		return total
	}
	for _, count := range c.SizeCounts {
		total += count
	}
	return total
}

// Bucket is one color/size quantity cell of the order.
type Bucket struct {
	Color string
	Size  string
	Count int
}

// Buckets flattens the quantity structure in deterministic order. An explicit
// total with no structure yields a single anonymous bucket.
func (c ProductConfiguration) Buckets() []Bucket {
	var out []Bucket
	colors := make([]string, 0, len(c.ColorSizeCounts))
	for color := range c.ColorSizeCounts {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	for _, color := range colors {
		sizes := make([]string, 0, len(c.ColorSizeCounts[color]))
		for size := range c.ColorSizeCounts[color] {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)
		for _, size := range sizes {
			if count := c.ColorSizeCounts[color][size]; count > 0 {
				out = append(out, Bucket{Color: color, Size: size, Count: count})
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	sizes := make([]string, 0, len(c.SizeCounts))
	for size := range c.SizeCounts {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	for _, size := range sizes {
		if count := c.SizeCounts[size]; count > 0 {
			out = append(out, Bucket{Size: size, Count: count})
		}
	}
	if len(out) > 0 {
		return out
	}

	if c.TotalUnits > 0 {
		out = append(out, Bucket{Count: c.TotalUnits})
	}
	return out
}

// Normalized canonicalizes the free-text surface of the configuration once at
// the boundary so the calculators only ever see canonical tags.
func (c ProductConfiguration) Normalized() ProductConfiguration {
	out := c

	out.Decorations = make([]DecorationSelection, 0, len(c.Decorations))
	for _, d := range c.Decorations {
		d.Type = CanonicalDecorationType(d.Type)
		d.Position = strings.TrimSpace(d.Position)
		d.Size = strings.TrimSpace(d.Size)
		d.Application = strings.TrimSpace(d.Application)
		if d.Type == "" {
			continue
		}
		out.Decorations = append(out.Decorations, d)
	}

	out.Accessories = make([]string, 0, len(c.Accessories))
	for _, name := range c.Accessories {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out.Accessories = append(out.Accessories, trimmed)
		}
	}

	out.Closure = strings.TrimSpace(c.Closure)
	out.FabricSetup = strings.TrimSpace(c.FabricSetup)
	out.DeliveryType = strings.TrimSpace(c.DeliveryType)
	out.PriorOrderRef = strings.TrimSpace(c.PriorOrderRef)
	out.PriceTier = strings.TrimSpace(c.PriceTier)
	return out
}
