package service

import (
	"fmt"
	"math"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
)

// Overlay transforms every line cost by cost*(1+percent/100)+flat, category
// by category: blank product costs take the BlankCaps margin, all
// customization categories take Customizations, delivery takes Delivery.
// It works on a copy; on any malformed setting the caller keeps the raw
// breakdown untouched.
func Overlay(
	raw costingdomain.CostBreakdown,
	settings map[margindomain.Category]margindomain.Setting,
) (costingdomain.CostBreakdown, error) {
	for category, setting := range settings {
		if err := validateSetting(setting); err != nil {
			return costingdomain.CostBreakdown{}, fmt.Errorf("category %s: %w", category, err)
		}
	}

	blank, ok := settings[margindomain.CategoryBlankCaps]
	if !ok {
		return costingdomain.CostBreakdown{}, fmt.Errorf("%w: missing blank caps setting", margindomain.ErrInvalidSetting)
	}
	custom, ok := settings[margindomain.CategoryCustomizations]
	if !ok {
		return costingdomain.CostBreakdown{}, fmt.Errorf("%w: missing customizations setting", margindomain.ErrInvalidSetting)
	}
	delivery, ok := settings[margindomain.CategoryDelivery]
	if !ok {
		return costingdomain.CostBreakdown{}, fmt.Errorf("%w: missing delivery setting", margindomain.ErrInvalidSetting)
	}

	out := raw.Clone()
	out.BaseProductCost = markup(out.BaseProductCost, blank)
	out.BaseUnitPrice = markupUnit(out.BaseUnitPrice, blank)

	applyToItems(out.Decorations, custom)
	applyToItems(out.MoldCharges, custom)
	applyToItems(out.Accessories, custom)
	applyToItems(out.Closures, custom)
	applyToItems(out.PremiumFabrics, custom)
	applyToItems(out.Delivery, delivery)

	out.Recalculate()
	return out, nil
}

func applyToItems(items []costingdomain.LineItem, setting margindomain.Setting) {
	for i := range items {
		if items[i].Waived {
			// A waived charge stays at zero; margin never resurrects it.
			continue
		}
		items[i].Cost = markup(items[i].Cost, setting)
		items[i].UnitPrice = markupUnit(items[i].UnitPrice, setting)
	}
}

func markup(cost float64, setting margindomain.Setting) float64 {
	return costingdomain.Round2(cost*(1+setting.MarginPercent/100) + setting.FlatMargin)
}

// markupUnit scales the display unit price by percent only; the flat fee is
// per line, not per unit.
func markupUnit(unitPrice float64, setting margindomain.Setting) float64 {
	return costingdomain.Round2(unitPrice * (1 + setting.MarginPercent/100))
}

func validateSetting(setting margindomain.Setting) error {
	if math.IsNaN(setting.MarginPercent) || math.IsInf(setting.MarginPercent, 0) ||
		math.IsNaN(setting.FlatMargin) || math.IsInf(setting.FlatMargin, 0) {
		return fmt.Errorf("%w: non-finite margin values", margindomain.ErrInvalidSetting)
	}
	if setting.MarginPercent < -100 {
		return fmt.Errorf("%w: margin percent below -100", margindomain.ErrInvalidSetting)
	}
	return nil
}
