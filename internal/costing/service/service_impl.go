package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"github.com/capquotelabs/capquote/internal/clock"
	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	marginservice "github.com/capquotelabs/capquote/internal/margin/service"
	"github.com/capquotelabs/capquote/internal/observability"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"github.com/capquotelabs/capquote/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	PriceSvc  pricelistdomain.Service
	MarginSvc margindomain.Service
	Validator *validation.Engine
	Audit     auditdomain.Recorder
	Metrics   *observability.Metrics `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	clock     clock.Clock
	priceSvc  pricelistdomain.Service
	marginSvc margindomain.Service
	validator *validation.Engine
	audit     auditdomain.Recorder
	metrics   *observability.Metrics
}

func New(p Params) costingdomain.Service {
	return &Service{
		log:       p.Log.Named("costing.service"),
		clock:     p.Clock,
		priceSvc:  p.PriceSvc,
		marginSvc: p.MarginSvc,
		validator: p.Validator,
		audit:     p.Audit,
		metrics:   p.Metrics,
	}
}

// Calculate runs one full costing pass: component calculators, aggregation,
// optional margin overlay, validation, audit. Every call surface goes through
// here; identical inputs and snapshots produce identical breakdowns.
func (s *Service) Calculate(ctx context.Context, req costingdomain.CalculateRequest) (*costingdomain.CalculateResponse, error) {
	started := time.Now()

	cfg := req.Config.Normalized()
	contextTag := normalizeContextTag(req.Context)

	units := cfg.Units()
	if units <= 0 {
		return nil, costingdomain.ErrMissingQuantity
	}

	baseCost, baseUnit, err := baseProductCost(cfg)
	if err != nil {
		return nil, err
	}

	snap, err := s.priceSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := s.compose(snap, cfg, units, baseCost, baseUnit)

	marginApplied := false
	marginFallback := ""
	if !req.SkipMargin {
		settings := s.marginSvc.Resolve(ctx)
		adjusted, overlayErr := marginservice.Overlay(breakdown, settings)
		if overlayErr != nil {
			// The overlay never aborts a calculation; raw costs go out and
			// the fallback is recorded for audit.
			marginFallback = overlayErr.Error()
			s.log.Warn("margin overlay failed, returning raw costs", zap.Error(overlayErr))
			if s.metrics != nil {
				s.metrics.MarginFallbacks.Inc()
			}
		} else {
			breakdown = adjusted
			marginApplied = true
		}
	}

	report := s.validator.Validate(breakdown)
	duration := time.Since(started)

	auditID := s.recordAudit(ctx, contextTag, req, cfg, breakdown, report, marginApplied, marginFallback, duration)

	if s.metrics != nil {
		s.metrics.CalculationsTotal.WithLabelValues(contextTag, strconv.FormatBool(report.IsValid)).Inc()
		s.metrics.CalculationDuration.Observe(duration.Seconds())
	}

	return &costingdomain.CalculateResponse{
		Breakdown:      breakdown,
		MarginApplied:  marginApplied,
		MarginFallback: marginFallback,
		Validation:     report,
		AuditEventID:   auditID,
		DurationMs:     duration.Milliseconds(),
	}, nil
}

// compose runs the independent component calculators and aggregates their
// line items. The calculators share only the immutable snapshot, so their
// order is irrelevant.
func (s *Service) compose(
	snap *pricelistdomain.Snapshot,
	cfg costingdomain.ProductConfiguration,
	units int,
	baseCost, baseUnit float64,
) costingdomain.CostBreakdown {
	breakdown := costingdomain.CostBreakdown{
		BaseProductCost: baseCost,
		BaseUnitPrice:   baseUnit,
		TotalUnits:      units,
	}

	for _, sel := range cfg.Decorations {
		item, misses := decorationCost(snap, sel, units)
		breakdown.Decorations = append(breakdown.Decorations, item)
		breakdown.Unresolved = append(breakdown.Unresolved, misses...)
	}

	moldItems, moldMisses := moldCharges(snap, cfg, units)
	breakdown.MoldCharges = moldItems
	breakdown.Unresolved = append(breakdown.Unresolved, moldMisses...)

	accessoryItems, accessoryMisses := accessoryCosts(snap, cfg.Accessories, units)
	breakdown.Accessories = accessoryItems
	breakdown.Unresolved = append(breakdown.Unresolved, accessoryMisses...)

	breakdown.Closures = closureCost(snap, cfg.Closure, units)
	breakdown.PremiumFabrics = fabricCosts(snap, cfg.FabricSetup, units)

	deliveryItems, deliveryMisses := deliveryCost(snap, cfg, units)
	breakdown.Delivery = deliveryItems
	breakdown.Unresolved = append(breakdown.Unresolved, deliveryMisses...)

	breakdown.Recalculate()
	return breakdown
}

func (s *Service) recordAudit(
	ctx context.Context,
	contextTag string,
	req costingdomain.CalculateRequest,
	cfg costingdomain.ProductConfiguration,
	breakdown costingdomain.CostBreakdown,
	report costingdomain.ValidationReport,
	marginApplied bool,
	marginFallback string,
	duration time.Duration,
) string {
	event := auditdomain.Event{
		Context:         contextTag,
		InputSummary:    marshalOrEmpty(buildInputSummary(cfg, req.SkipMargin)),
		OutputBreakdown: marshalOrEmpty(struct {
			Breakdown  costingdomain.CostBreakdown    `json:"breakdown"`
			Validation costingdomain.ValidationReport `json:"validation"`
		}{breakdown, report}),
		IsValid:         report.IsValid,
		ValidationScore: report.Score,
		MarginApplied:   marginApplied,
		MarginFallback:  marginFallback,
		DurationMs:      duration.Milliseconds(),
	}

	id, err := s.audit.Record(ctx, event)
	if err != nil {
		// An audit write failure is logged, never surfaced to the caller.
		s.log.Error("audit write failed", zap.Error(err), zap.String("context", contextTag))
		if s.metrics != nil {
			s.metrics.AuditWriteFailures.Inc()
		}
		return ""
	}
	return id.String()
}

type inputSummary struct {
	Units           int      `json:"units"`
	DecorationTypes []string `json:"decoration_types,omitempty"`
	Accessories     []string `json:"accessories,omitempty"`
	Closure         string   `json:"closure,omitempty"`
	FabricSetup     string   `json:"fabric_setup,omitempty"`
	DeliveryType    string   `json:"delivery_type,omitempty"`
	PriorOrderRef   string   `json:"prior_order_ref,omitempty"`
	FreightQuantity int      `json:"freight_quantity,omitempty"`
	SkipMargin      bool     `json:"skip_margin,omitempty"`
}

func buildInputSummary(cfg costingdomain.ProductConfiguration, skipMargin bool) inputSummary {
	summary := inputSummary{
		Units:           cfg.Units(),
		Accessories:     cfg.Accessories,
		Closure:         cfg.Closure,
		FabricSetup:     cfg.FabricSetup,
		DeliveryType:    cfg.DeliveryType,
		PriorOrderRef:   cfg.PriorOrderRef,
		FreightQuantity: cfg.FreightQuantity,
		SkipMargin:      skipMargin,
	}
	for _, sel := range cfg.Decorations {
		summary.DecorationTypes = append(summary.DecorationTypes, joinName(sel.Position, sel.Type))
	}
	return summary
}

func marshalOrEmpty(v any) datatypes.JSON {
	payload, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(payload)
}

func normalizeContextTag(tag string) string {
	switch tag {
	case costingdomain.ContextCart, costingdomain.ContextQuote, costingdomain.ContextInvoice:
		return tag
	default:
		return costingdomain.ContextQuote
	}
}
