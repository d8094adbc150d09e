package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the calculation instrumentation exposed on /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	AuditWriteFailures  prometheus.Counter
	MarginFallbacks     prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		CalculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "capquote_calculations_total",
			Help: "Completed cost calculations by calling surface and validity.",
		}, []string{"context", "valid"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "capquote_calculation_duration_seconds",
			Help:    "Wall time of one cost calculation including audit write.",
			Buckets: prometheus.DefBuckets,
		}),
		AuditWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "capquote_audit_write_failures_total",
			Help: "Audit events that could not be persisted.",
		}),
		MarginFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "capquote_margin_fallbacks_total",
			Help: "Calculations that returned raw costs after a margin overlay failure.",
		}),
	}

	reg.MustRegister(m.CalculationsTotal, m.CalculationDuration, m.AuditWriteFailures, m.MarginFallbacks)
	return m
}
