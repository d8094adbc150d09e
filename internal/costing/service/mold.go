package service

import (
	"fmt"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

const defaultMoldSize = "Medium"

// moldCharges computes the one-time tooling fees for patch decorations. The
// charge is never multiplied by quantity. A non-empty prior order reference
// waives the full charge; the reference is trusted as-is, the referenced
// order's own decoration is not cross-checked.
func moldCharges(
	snap *pricelistdomain.Snapshot,
	cfg costingdomain.ProductConfiguration,
	units int,
) ([]costingdomain.LineItem, []costingdomain.UnresolvedComponent) {
	var (
		items      []costingdomain.LineItem
		unresolved []costingdomain.UnresolvedComponent
	)

	for _, sel := range cfg.Decorations {
		if !costingdomain.IsMoldRequired(sel.Type) {
			continue
		}

		size := sel.Size
		if size == "" {
			size = defaultMoldSize
		}
		rowName := fmt.Sprintf("%s Mold Charge", size)

		row, ok := snap.Find(pricelistdomain.CategoryMold, rowName)
		if !ok {
			// No row, no charge, but leave the marker for the audit trail.
			unresolved = append(unresolved, costingdomain.UnresolvedComponent{
				Category: pricelistdomain.CategoryMold,
				Name:     rowName,
			})
			continue
		}

		charge := row.UnitPriceAt(units)
		item := costingdomain.LineItem{
			Name:      row.Name,
			UnitPrice: charge,
			Quantity:  1,
			Cost:      costingdomain.Round2(charge),
			Details:   fmt.Sprintf("One-time tooling for %s", sel.Type),
		}

		if cfg.PriorOrderRef != "" {
			item.Cost = 0
			item.Waived = true
			item.WaiverReason = fmt.Sprintf("Mold reused from prior order %s", cfg.PriorOrderRef)
		}

		items = append(items, item)
	}
	return items, unresolved
}
