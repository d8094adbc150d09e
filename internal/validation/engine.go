// Package validation runs the consistency battery over finished cost
// breakdowns. Validation observes; it never blocks a response.
package validation

import (
	"fmt"
	"math"

	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	"go.uber.org/zap"
)

// Tolerance absorbs float drift when comparing the total against the sum of
// its parts.
const Tolerance = 0.01

const (
	warningPenalty = 10
	errorPenalty   = 30
)

type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{log: log.Named("validation.engine")}
}

// Validate checks structural soundness and internal consistency. Errors mark
// the breakdown invalid; warnings only downgrade the score.
func (e *Engine) Validate(b costingdomain.CostBreakdown) costingdomain.ValidationReport {
	report := costingdomain.ValidationReport{IsValid: true, Score: 100}

	e.checkNumbers(&report, b)
	e.checkTotal(&report, b)
	e.checkUnits(&report, b)
	e.checkMoldCharges(&report, b)

	if len(report.Errors) > 0 {
		e.log.Warn("breakdown failed validation",
			zap.Strings("errors", report.Errors),
			zap.Int("score", report.Score))
	}
	return report
}

func (e *Engine) checkNumbers(report *costingdomain.ValidationReport, b costingdomain.CostBreakdown) {
	check := func(label string, value float64) {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			addError(report, fmt.Sprintf("%s is not a finite number", label))
			return
		}
		if value < 0 {
			addError(report, fmt.Sprintf("%s is negative (%.2f)", label, value))
		}
	}

	check("base product cost", b.BaseProductCost)
	check("base unit price", b.BaseUnitPrice)
	check("total cost", b.TotalCost)
	forEachItem(b, func(category string, item costingdomain.LineItem) {
		check(fmt.Sprintf("%s item %q cost", category, item.Name), item.Cost)
		check(fmt.Sprintf("%s item %q unit price", category, item.Name), item.UnitPrice)
	})
}

func (e *Engine) checkTotal(report *costingdomain.ValidationReport, b costingdomain.CostBreakdown) {
	expected := b.BaseProductCost + b.LineItemSum()
	if math.IsNaN(expected) || math.IsInf(expected, 0) {
		return // already reported as a structural error
	}
	if diff := math.Abs(expected - b.TotalCost); diff > Tolerance {
		addWarning(report, fmt.Sprintf(
			"total cost %.2f differs from component sum %.2f by %.4f", b.TotalCost, expected, diff))
	}
}

func (e *Engine) checkUnits(report *costingdomain.ValidationReport, b costingdomain.CostBreakdown) {
	if b.TotalCost > Tolerance && b.TotalUnits <= 0 {
		addError(report, "breakdown carries cost but no units")
	}
}

func (e *Engine) checkMoldCharges(report *costingdomain.ValidationReport, b costingdomain.CostBreakdown) {
	for _, item := range b.MoldCharges {
		if item.Waived && item.Cost != 0 {
			addError(report, fmt.Sprintf("waived mold charge %q still carries cost %.2f", item.Name, item.Cost))
		}
		if !item.Waived && item.WaiverReason != "" {
			addWarning(report, fmt.Sprintf("mold charge %q has a waiver reason but is not waived", item.Name))
		}
	}
}

func forEachItem(b costingdomain.CostBreakdown, fn func(category string, item costingdomain.LineItem)) {
	groups := []struct {
		name  string
		items []costingdomain.LineItem
	}{
		{"decoration", b.Decorations},
		{"mold", b.MoldCharges},
		{"accessory", b.Accessories},
		{"closure", b.Closures},
		{"premium fabric", b.PremiumFabrics},
		{"delivery", b.Delivery},
	}
	for _, group := range groups {
		for _, item := range group.items {
			fn(group.name, item)
		}
	}
}

func addError(report *costingdomain.ValidationReport, msg string) {
	report.Errors = append(report.Errors, msg)
	report.IsValid = false
	report.Score = clampScore(report.Score - errorPenalty)
}

func addWarning(report *costingdomain.ValidationReport, msg string) {
	report.Warnings = append(report.Warnings, msg)
	report.Score = clampScore(report.Score - warningPenalty)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
