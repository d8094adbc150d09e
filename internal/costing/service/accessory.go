package service

import (
	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// accessoryCosts prices each selected accessory by catalog name or slug. A
// selection with no matching row contributes $0 and an unresolved marker.
func accessoryCosts(
	snap *pricelistdomain.Snapshot,
	names []string,
	units int,
) ([]costingdomain.LineItem, []costingdomain.UnresolvedComponent) {
	var (
		items      []costingdomain.LineItem
		unresolved []costingdomain.UnresolvedComponent
	)

	for _, name := range names {
		row, ok := snap.Find(pricelistdomain.CategoryAccessories, name)
		if !ok {
			unresolved = append(unresolved, costingdomain.UnresolvedComponent{
				Category: pricelistdomain.CategoryAccessories,
				Name:     name,
			})
			continue
		}

		unitPrice := row.UnitPriceAt(units)
		items = append(items, costingdomain.LineItem{
			Name:      row.Name,
			UnitPrice: unitPrice,
			Quantity:  units,
			Cost:      costingdomain.Round2(unitPrice * float64(units)),
		})
	}
	return items, unresolved
}
