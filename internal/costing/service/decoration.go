package service

import (
	"strings"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
)

// decorationCost prices one logo setup. Every lookup miss contributes $0 and
// is dropped from the detail string; the miss itself is surfaced as an
// unresolved marker so audits can tell "free" from "not found".
func decorationCost(
	snap *pricelistdomain.Snapshot,
	sel costingdomain.DecorationSelection,
	units int,
) (costingdomain.LineItem, []costingdomain.UnresolvedComponent) {
	var (
		unitPrice  float64
		details    []string
		unresolved []costingdomain.UnresolvedComponent
	)

	addPart := func(rowName string) {
		row, ok := snap.Find(pricelistdomain.CategoryDecoration, rowName)
		if !ok {
			unresolved = append(unresolved, costingdomain.UnresolvedComponent{
				Category: pricelistdomain.CategoryDecoration,
				Name:     rowName,
			})
			return
		}
		unitPrice += row.UnitPriceAt(units)
		details = append(details, row.Name)
	}

	switch sel.Type {
	case costingdomain.DecorationType3DEmbroidery:
		// Composite: the size-scaled embroidery row plus the flat 3D base row.
		addPart(joinName(sel.Size, "Size Embroidery"))
		addPart(costingdomain.DecorationType3DEmbroidery)
	case costingdomain.DecorationTypeFlatEmbroidery:
		addPart(joinName(sel.Size, "Size Embroidery"))
	default:
		addPart(joinName(sel.Size, sel.Type))
	}

	if !costingdomain.IsDefaultApplication(sel.Application) {
		addPart(sel.Application)
	}

	item := costingdomain.LineItem{
		Name:      joinName(sel.Position, sel.Type),
		UnitPrice: unitPrice,
		Quantity:  units,
		Cost:      costingdomain.Round2(unitPrice * float64(units)),
		Details:   strings.Join(details, " + "),
	}
	return item, unresolved
}

func joinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
