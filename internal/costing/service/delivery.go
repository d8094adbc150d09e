package service

import (
	"fmt"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// deliveryCost prices the selected delivery method. When a combined-shipment
// quantity is present, the discount tier is selected from current + combined
// units, but the charge always multiplies this order's own units: the order
// earns the combined volume's discount level yet pays only for itself.
func deliveryCost(
	snap *pricelistdomain.Snapshot,
	cfg costingdomain.ProductConfiguration,
	units int,
) ([]costingdomain.LineItem, []costingdomain.UnresolvedComponent) {
	if cfg.DeliveryType == "" {
		return nil, nil
	}

	rowName := costingdomain.DeliveryRowName(cfg.DeliveryType)
	row, ok := snap.Find(pricelistdomain.CategoryShipping, rowName)
	if !ok {
		return nil, []costingdomain.UnresolvedComponent{{
			Category: pricelistdomain.CategoryShipping,
			Name:     rowName,
		}}
	}

	tierUnits := units
	details := ""
	if cfg.FreightQuantity > 0 {
		tierUnits = units + cfg.FreightQuantity
		details = fmt.Sprintf("Tier selected at %d combined units", tierUnits)
	}

	unitPrice := row.UnitPriceAt(tierUnits)
	return []costingdomain.LineItem{{
		Name:      row.Name,
		UnitPrice: unitPrice,
		Quantity:  units,
		Cost:      costingdomain.Round2(unitPrice * float64(units)),
		Details:   details,
	}}, nil
}
