package service

import (
	"strings"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
)

// defaultBaseTiers is the fallback blank-product price table, keyed by price
// tier label, used when the caller supplies no explicit tier-price object.
var defaultBaseTiers = map[string]costingdomain.BaseTierPrices{
	"tier 1": {Price48: 4.00, Price144: 3.50, Price576: 3.00, Price1152: 2.80, Price2880: 2.60, Price10000: 2.40},
	"tier 2": {Price48: 4.80, Price144: 4.20, Price576: 3.60, Price1152: 3.30, Price2880: 3.00, Price10000: 2.80},
	"tier 3": {Price48: 5.60, Price144: 5.00, Price576: 4.40, Price1152: 4.00, Price2880: 3.70, Price10000: 3.40},
}

// baseProductCost prices the blank product. The discount tier is selected
// once from the aggregate quantity; every color/size bucket then resolves its
// unit price off that same tier, never off its own sub-quantity.
func baseProductCost(cfg costingdomain.ProductConfiguration) (cost, unitPrice float64, err error) {
	tiers := cfg.BasePrice
	if tiers == nil {
		fallback, ok := defaultBaseTiers[strings.ToLower(cfg.PriceTier)]
		if !ok {
			return 0, 0, costingdomain.ErrMissingBasePrice
		}
		tiers = &fallback
	}

	units := cfg.Units()
	total := 0.0
	for _, bucket := range cfg.Buckets() {
		bucketUnit := tiers.UnitPriceAt(units)
		total += bucketUnit * float64(bucket.Count)
	}

	return costingdomain.Round2(total), tiers.UnitPriceAt(units), nil
}
