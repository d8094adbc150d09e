package service

import (
	"strings"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// fabricCosts prices a fabric setup. A dual setup ("Acrylic/Airmesh") tests
// each half independently against the premium fabric rows; halves that match
// the same row are billed once. A half with no match is a standard fabric and
// simply free.
func fabricCosts(
	snap *pricelistdomain.Snapshot,
	setup string,
	units int,
) []costingdomain.LineItem {
	if setup == "" {
		return nil
	}

	var items []costingdomain.LineItem
	seen := make(map[string]bool)

	for _, half := range strings.Split(setup, "/") {
		half = strings.TrimSpace(half)
		if half == "" {
			continue
		}

		row, ok := snap.Find(pricelistdomain.CategoryPremiumFabric, half)
		if !ok {
			continue
		}
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true

		unitPrice := row.UnitPriceAt(units)
		items = append(items, costingdomain.LineItem{
			Name:      row.Name,
			UnitPrice: unitPrice,
			Quantity:  units,
			Cost:      costingdomain.Round2(unitPrice * float64(units)),
		})
	}
	return items
}
