package domain

import "strings"

// Canonical decoration type tags. Free-text input is folded onto these once,
// when a configuration is normalized.
const (
	DecorationType3DEmbroidery    = "3D Embroidery"
	DecorationTypeFlatEmbroidery  = "Flat Embroidery"
	DecorationTypePrintWovenPatch = "Print Woven Patch"
	DecorationTypeRubberPatch     = "Rubber Patch"
	DecorationTypeLeatherPatch    = "Leather Patch"
)

// decorationAliases maps folded free-text variants to canonical tags. Folding
// lowercases and converts hyphens to spaces, so "printed-patch" and
// "Printed Patch" hit the same entry.
var decorationAliases = map[string]string{
	"3d embroidery":    DecorationType3DEmbroidery,
	"flat embroidery":  DecorationTypeFlatEmbroidery,
	"embroidery":       DecorationTypeFlatEmbroidery,
	"printed patch":    DecorationTypePrintWovenPatch,
	"print patch":      DecorationTypePrintWovenPatch,
	"woven patch":      DecorationTypePrintWovenPatch,
	"sublimated patch": DecorationTypePrintWovenPatch,
	"direct print":     DecorationTypePrintWovenPatch,
	"rubber patch":     DecorationTypeRubberPatch,
	"leather patch":    DecorationTypeLeatherPatch,
}

// CanonicalDecorationType resolves a free-form decoration type to its
// canonical tag. Unknown types pass through trimmed so they can still be
// priced by literal catalog name.
func CanonicalDecorationType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := decorationAliases[foldName(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// DefaultApplication is included in the base decoration price; anything else
// is charged on top.
const DefaultApplication = "Direct"

// IsDefaultApplication reports whether an application method carries no extra
// charge.
func IsDefaultApplication(application string) bool {
	trimmed := strings.TrimSpace(application)
	return trimmed == "" || strings.EqualFold(trimmed, DefaultApplication)
}

// deliveryRowNames maps logical delivery keys to catalog row names.
// Unrecognized keys pass through and are treated as literal catalog names.
var deliveryRowNames = map[string]string{
	"regular":     "Regular Delivery",
	"priority":    "Priority Delivery",
	"air-freight": "Air Freight",
	"sea-freight": "Sea Freight",
}

func DeliveryRowName(key string) string {
	trimmed := strings.TrimSpace(key)
	if name, ok := deliveryRowNames[strings.ToLower(trimmed)]; ok {
		return name
	}
	return trimmed
}

// IsMoldRequired reports whether a decoration type needs a physical mold.
// Substring match on the canonical tag keeps variants like
// "Large Rubber Patch" covered.
func IsMoldRequired(decorationType string) bool {
	folded := strings.ToLower(decorationType)
	return strings.Contains(folded, "rubber patch") || strings.Contains(folded, "leather patch")
}

func foldName(s string) string {
	folded := strings.ToLower(strings.TrimSpace(s))
	folded = strings.ReplaceAll(folded, "-", " ")
	return strings.Join(strings.Fields(folded), " ")
}
