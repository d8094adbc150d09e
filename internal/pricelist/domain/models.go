// Package domain defines the tiered price catalog consumed by the costing
// engine.
package domain

import (
	"github.com/bwmarrin/snowflake"
)

type Category string

const (
	CategoryDecoration     Category = "decoration"
	CategoryMold           Category = "mold"
	CategoryAccessories    Category = "accessories"
	CategoryPremiumClosure Category = "premium_closure"
	CategoryPremiumFabric  Category = "premium_fabric"
	CategoryShipping       Category = "shipping"
)

// QuantityBreaks are the fixed volume breakpoints, ascending. A quantity below
// the first breakpoint prices at the first tier; nothing cheaper exists.
var QuantityBreaks = [6]int{48, 144, 576, 1152, 2880, 10000}

// PriceRow is one named catalog entry with a unit price per quantity break.
// Rows are immutable for the duration of a calculation.
type PriceRow struct {
	ID         snowflake.ID `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	Category   Category     `json:"category"`
	Price48    float64      `json:"price_48"`
	Price144   float64      `json:"price_144"`
	Price576   float64      `json:"price_576"`
	Price1152  float64      `json:"price_1152"`
	Price2880  float64      `json:"price_2880"`
	Price10000 float64      `json:"price_10000"`
}

func (r PriceRow) tierPrices() [6]float64 {
	return [6]float64{r.Price48, r.Price144, r.Price576, r.Price1152, r.Price2880, r.Price10000}
}

// UnitPriceAt resolves the unit price for a quantity: the price of the largest
// breakpoint not exceeding it. Quantities below 48 (including zero) resolve to
// the 48-tier price.
func (r PriceRow) UnitPriceAt(quantity int) float64 {
	prices := r.tierPrices()
	price := prices[0]
	for i, breakpoint := range QuantityBreaks {
		if quantity >= breakpoint {
			price = prices[i]
		}
	}
	return price
}
