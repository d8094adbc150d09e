package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitsDerivation(t *testing.T) {
	cases := []struct {
		name string
		cfg  ProductConfiguration
		want int
	}{
		{"explicit total wins", ProductConfiguration{TotalUnits: 500, SizeCounts: map[string]int{"M": 10}}, 500},
		{"color size buckets", ProductConfiguration{ColorSizeCounts: map[string]map[string]int{
			"Black": {"S": 40, "M": 60},
			"Navy":  {"M": 100},
		}}, 200},
		{"flat size map", ProductConfiguration{SizeCounts: map[string]int{"S": 25, "M": 75}}, 100},
		{"empty", ProductConfiguration{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Units())
		})
	}
}

func TestBucketsDeterministicOrder(t *testing.T) {
	cfg := ProductConfiguration{ColorSizeCounts: map[string]map[string]int{
		"Red":   {"M": 10, "L": 5},
		"Black": {"S": 20},
	}}

	want := []Bucket{
		{Color: "Black", Size: "S", Count: 20},
		{Color: "Red", Size: "L", Count: 5},
		{Color: "Red", Size: "M", Count: 10},
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, cfg.Buckets())
	}
}

func TestBucketsDropZeroCounts(t *testing.T) {
	cfg := ProductConfiguration{SizeCounts: map[string]int{"S": 0, "M": 30}}

	assert.Equal(t, []Bucket{{Size: "M", Count: 30}}, cfg.Buckets())
}

func TestBucketsExplicitTotalOnly(t *testing.T) {
	cfg := ProductConfiguration{TotalUnits: 144}

	assert.Equal(t, []Bucket{{Count: 144}}, cfg.Buckets())
}

func TestCanonicalDecorationType(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"3D Embroidery", DecorationType3DEmbroidery},
		{"3d embroidery", DecorationType3DEmbroidery},
		{"embroidery", DecorationTypeFlatEmbroidery},
		{"Flat Embroidery", DecorationTypeFlatEmbroidery},
		{"Printed Patch", DecorationTypePrintWovenPatch},
		{"printed-patch", DecorationTypePrintWovenPatch},
		{"woven patch", DecorationTypePrintWovenPatch},
		{"Sublimated Patch", DecorationTypePrintWovenPatch},
		{"direct print", DecorationTypePrintWovenPatch},
		{"Rubber Patch", DecorationTypeRubberPatch},
		{"leather-patch", DecorationTypeLeatherPatch},
		{"  Laser Etch  ", "Laser Etch"}, // unknown types pass through trimmed
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanonicalDecorationType(tc.raw), "raw %q", tc.raw)
	}
}

func TestIsDefaultApplication(t *testing.T) {
	assert.True(t, IsDefaultApplication(""))
	assert.True(t, IsDefaultApplication("Direct"))
	assert.True(t, IsDefaultApplication("direct"))
	assert.False(t, IsDefaultApplication("Satin"))
	assert.False(t, IsDefaultApplication("Heat Transfer"))
}

func TestIsMoldRequired(t *testing.T) {
	assert.True(t, IsMoldRequired("Rubber Patch"))
	assert.True(t, IsMoldRequired("Large Leather Patch"))
	assert.False(t, IsMoldRequired("Flat Embroidery"))
	assert.False(t, IsMoldRequired("Print Woven Patch"))
}

func TestDeliveryRowName(t *testing.T) {
	assert.Equal(t, "Regular Delivery", DeliveryRowName("regular"))
	assert.Equal(t, "Priority Delivery", DeliveryRowName("Priority"))
	assert.Equal(t, "Air Freight", DeliveryRowName("air-freight"))
	assert.Equal(t, "Sea Freight", DeliveryRowName("sea-freight"))
	assert.Equal(t, "Courier Express", DeliveryRowName(" Courier Express "))
}

func TestNormalizedDropsEmptySelections(t *testing.T) {
	cfg := ProductConfiguration{
		Decorations: []DecorationSelection{
			{Type: "  "},
			{Type: "printed patch", Position: " Front ", Size: " Medium "},
		},
		Accessories:   []string{" Hang Tag ", "", "Sticker"},
		Closure:       " Flexfit ",
		PriorOrderRef: " ORD-42 ",
	}

	out := cfg.Normalized()

	assert.Len(t, out.Decorations, 1)
	assert.Equal(t, DecorationTypePrintWovenPatch, out.Decorations[0].Type)
	assert.Equal(t, "Front", out.Decorations[0].Position)
	assert.Equal(t, "Medium", out.Decorations[0].Size)
	assert.Equal(t, []string{"Hang Tag", "Sticker"}, out.Accessories)
	assert.Equal(t, "Flexfit", out.Closure)
	assert.Equal(t, "ORD-42", out.PriorOrderRef)
}

func TestRecalculateSumsAllComponents(t *testing.T) {
	b := CostBreakdown{
		BaseProductCost: 100,
		Decorations:     []LineItem{{Cost: 10}, {Cost: 20}},
		MoldCharges:     []LineItem{{Cost: 45}, {Cost: 0, Waived: true}},
		Accessories:     []LineItem{{Cost: 5}},
		Delivery:        []LineItem{{Cost: 30}},
	}
	b.Recalculate()

	assert.Equal(t, 210.00, b.TotalCost)
}

func TestCloneIsolatesLineItems(t *testing.T) {
	b := CostBreakdown{
		Decorations: []LineItem{{Name: "Front Flat Embroidery", Cost: 10}},
	}

	clone := b.Clone()
	clone.Decorations[0].Cost = 99

	assert.Equal(t, 10.00, b.Decorations[0].Cost)
}
