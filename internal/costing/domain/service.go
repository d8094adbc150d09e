package domain

import (
	"context"
	"math"
)

// Calling surfaces. Each calculation records which one triggered it.
const (
	ContextCart    = "cart"
	ContextQuote   = "quote"
	ContextInvoice = "invoice"
)

type CalculateRequest struct {
	Config     ProductConfiguration `json:"configuration"`
	Context    string               `json:"context"`
	SkipMargin bool                 `json:"skip_margin"`
}

type CalculateResponse struct {
	Breakdown      CostBreakdown    `json:"breakdown"`
	MarginApplied  bool             `json:"margin_applied"`
	MarginFallback string           `json:"margin_fallback,omitempty"`
	Validation     ValidationReport `json:"validation"`
	AuditEventID   string           `json:"audit_event_id,omitempty"`
	DurationMs     int64            `json:"duration_ms"`
}

// ValidationReport is the verdict the validation engine attaches to a
// finished breakdown.
type ValidationReport struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Score    int      `json:"score"`
}

type Service interface {
	Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round2 rounds to cents. Exported for the overlay pass.
func Round2(v float64) float64 { return round2(v) }
