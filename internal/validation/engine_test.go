package validation

import (
	"math"
	"testing"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func consistentBreakdown() costingdomain.CostBreakdown {
	b := costingdomain.CostBreakdown{
		BaseProductCost: 400.00,
		BaseUnitPrice:   4.00,
		Decorations: []costingdomain.LineItem{
			{Name: "Front Flat Embroidery", Cost: 85.00, UnitPrice: 0.85, Quantity: 100},
		},
		TotalUnits: 100,
	}
	b.Recalculate()
	return b
}

func TestValidateCleanBreakdown(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	report := engine.Validate(consistentBreakdown())

	assert.True(t, report.IsValid)
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidateTotalMismatchIsWarning(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	b := consistentBreakdown()
	b.TotalCost += 5.00

	report := engine.Validate(b)

	assert.True(t, report.IsValid, "a drifted total downgrades the score but stays valid")
	assert.Equal(t, 90, report.Score)
	assert.Len(t, report.Warnings, 1)
}

func TestValidateNonFiniteCostIsError(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	b := consistentBreakdown()
	b.Decorations[0].Cost = math.NaN()

	report := engine.Validate(b)

	assert.False(t, report.IsValid)
	assert.Equal(t, 70, report.Score)
	assert.Len(t, report.Errors, 1)
}

func TestValidateNegativeCostIsError(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	b := consistentBreakdown()
	b.BaseProductCost = -10
	b.Recalculate()

	report := engine.Validate(b)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors[0], "negative")
}

func TestValidateCostWithoutUnitsIsError(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	b := consistentBreakdown()
	b.TotalUnits = 0

	report := engine.Validate(b)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors[0], "no units")
}

func TestValidateMoldWaiverConsistency(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	t.Run("waived with residual cost", func(t *testing.T) {
		b := consistentBreakdown()
		b.MoldCharges = []costingdomain.LineItem{
			{Name: "Medium Mold Charge", Cost: 45.00, Waived: true, WaiverReason: "Mold reused from prior order ORD-7"},
		}
		b.Recalculate()

		report := engine.Validate(b)
		assert.False(t, report.IsValid)
		assert.Contains(t, report.Errors[0], "still carries cost")
	})

	t.Run("reason without waiver", func(t *testing.T) {
		b := consistentBreakdown()
		b.MoldCharges = []costingdomain.LineItem{
			{Name: "Medium Mold Charge", Cost: 45.00, UnitPrice: 45.00, Quantity: 1, WaiverReason: "Mold reused from prior order ORD-7"},
		}
		b.Recalculate()

		report := engine.Validate(b)
		assert.True(t, report.IsValid)
		assert.Equal(t, 90, report.Score)
		assert.Len(t, report.Warnings, 1)
	})
}

func TestValidateScoreClampsAtZero(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	b := costingdomain.CostBreakdown{
		BaseProductCost: math.NaN(),
		BaseUnitPrice:   -1,
		TotalCost:       math.Inf(1),
		MoldCharges: []costingdomain.LineItem{
			{Name: "Small Mold Charge", Cost: 10, Waived: true},
		},
	}

	report := engine.Validate(b)

	assert.False(t, report.IsValid)
	assert.Equal(t, 0, report.Score)
}
