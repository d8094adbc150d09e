package service

import (
	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// closureCost prices a selected closure only when a premium closure row
// matches. An unmatched closure is deliberately free: the blank product price
// already includes the default closure, so no unresolved marker is emitted.
func closureCost(
	snap *pricelistdomain.Snapshot,
	closure string,
	units int,
) []costingdomain.LineItem {
	if closure == "" {
		return nil
	}

	row, ok := snap.Find(pricelistdomain.CategoryPremiumClosure, closure)
	if !ok {
		return nil
	}

	unitPrice := row.UnitPriceAt(units)
	return []costingdomain.LineItem{{
		Name:      row.Name,
		UnitPrice: unitPrice,
		Quantity:  units,
		Cost:      costingdomain.Round2(unitPrice * float64(units)),
	}}
}
