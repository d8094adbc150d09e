package service

import (
	"math"
	"testing"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() map[margindomain.Category]margindomain.Setting {
	return margindomain.Defaults()
}

func TestOverlayBlankCapsMargin(t *testing.T) {
	raw := costingdomain.CostBreakdown{
		BaseProductCost: 400.00,
		BaseUnitPrice:   4.00,
		TotalUnits:      100,
	}
	raw.Recalculate()

	out, err := Overlay(raw, defaultSettings())
	require.NoError(t, err)

	// 60% on blank caps: 400 -> 640.
	assert.Equal(t, 640.00, out.BaseProductCost)
	assert.Equal(t, 6.40, out.BaseUnitPrice)
	assert.Equal(t, 640.00, out.TotalCost)
}

func TestOverlayRoutesCategories(t *testing.T) {
	raw := costingdomain.CostBreakdown{
		BaseProductCost: 100.00,
		BaseUnitPrice:   1.00,
		Decorations:     []costingdomain.LineItem{{Name: "Front 3D Embroidery", Cost: 50.00, UnitPrice: 0.50, Quantity: 100}},
		Delivery:        []costingdomain.LineItem{{Name: "Air Freight", Cost: 80.00, UnitPrice: 0.80, Quantity: 100}},
		TotalUnits:      100,
	}
	raw.Recalculate()

	settings := map[margindomain.Category]margindomain.Setting{
		margindomain.CategoryBlankCaps:      {Category: margindomain.CategoryBlankCaps, MarginPercent: 10},
		margindomain.CategoryCustomizations: {Category: margindomain.CategoryCustomizations, MarginPercent: 100, FlatMargin: 1.00},
		margindomain.CategoryDelivery:       {Category: margindomain.CategoryDelivery, MarginPercent: 0, FlatMargin: 5.00},
	}

	out, err := Overlay(raw, settings)
	require.NoError(t, err)

	assert.Equal(t, 110.00, out.BaseProductCost)
	// cost*(1+100/100)+1 flat; unit price scales by percent only.
	assert.Equal(t, 101.00, out.Decorations[0].Cost)
	assert.Equal(t, 1.00, out.Decorations[0].UnitPrice)
	assert.Equal(t, 85.00, out.Delivery[0].Cost)
	assert.Equal(t, 0.80, out.Delivery[0].UnitPrice)
	assert.Equal(t, 296.00, out.TotalCost)
}

func TestOverlaySkipsWaivedItems(t *testing.T) {
	raw := costingdomain.CostBreakdown{
		MoldCharges: []costingdomain.LineItem{
			{Name: "Medium Mold Charge", Cost: 0, Waived: true, WaiverReason: "Mold reused from prior order ORD-1001"},
			{Name: "Large Mold Charge", Cost: 60.00, UnitPrice: 60.00, Quantity: 1},
		},
		TotalUnits: 200,
	}
	raw.Recalculate()

	out, err := Overlay(raw, defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.MoldCharges[0].Cost, "waived charge must stay at zero")
	assert.True(t, out.MoldCharges[0].Waived)
	assert.Equal(t, 99.10, out.MoldCharges[1].Cost) // 60*1.65 + 0.10
}

func TestOverlayLeavesRawUntouched(t *testing.T) {
	raw := costingdomain.CostBreakdown{
		BaseProductCost: 200.00,
		Accessories:     []costingdomain.LineItem{{Name: "Hang Tag", Cost: 30.00, UnitPrice: 0.30, Quantity: 100}},
	}
	raw.Recalculate()

	_, err := Overlay(raw, defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 200.00, raw.BaseProductCost)
	assert.Equal(t, 30.00, raw.Accessories[0].Cost)
}

func TestOverlayRejectsMalformedSettings(t *testing.T) {
	raw := costingdomain.CostBreakdown{BaseProductCost: 100}
	raw.Recalculate()

	cases := []struct {
		name     string
		mutate   func(map[margindomain.Category]margindomain.Setting)
	}{
		{"nan percent", func(s map[margindomain.Category]margindomain.Setting) {
			setting := s[margindomain.CategoryBlankCaps]
			setting.MarginPercent = math.NaN()
			s[margindomain.CategoryBlankCaps] = setting
		}},
		{"infinite flat", func(s map[margindomain.Category]margindomain.Setting) {
			setting := s[margindomain.CategoryDelivery]
			setting.FlatMargin = math.Inf(1)
			s[margindomain.CategoryDelivery] = setting
		}},
		{"percent below -100", func(s map[margindomain.Category]margindomain.Setting) {
			setting := s[margindomain.CategoryCustomizations]
			setting.MarginPercent = -150
			s[margindomain.CategoryCustomizations] = setting
		}},
		{"missing category", func(s map[margindomain.Category]margindomain.Setting) {
			delete(s, margindomain.CategoryDelivery)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := defaultSettings()
			tc.mutate(settings)
			_, err := Overlay(raw, settings)
			require.Error(t, err)
			assert.ErrorIs(t, err, margindomain.ErrInvalidSetting)
		})
	}
}
