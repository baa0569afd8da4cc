// Package observe provides the engine's OpenTelemetry metrics and tracing
// primitives.
//
// Tests should use [NewMetrics] with their own [metric.MeterProvider] to avoid
// cross-test pollution; [DefaultMetrics] uses the global provider.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all engine metrics.
const meterName = "github.com/KirkDiggler/crucible-engine"

// Use statuses recorded on the uses counter.
const (
	StatusOutcomes   = "outcomes"
	StatusIneligible = "ineligible"
	StatusCancelled  = "cancelled"
	StatusInvalid    = "invalid"
)

// Metrics holds the engine's metric instruments.
type Metrics struct {
	// Uses counts use attempts by terminal status.
	//   attribute.String("status", ...)
	Uses metric.Int64Counter

	// HookFailures counts isolated hook errors and panics.
	//   attribute.String("phase", ...)
	HookFailures metric.Int64Counter

	// Confirmations counts applied and reversed outcome maps.
	//   attribute.String("mode", "confirm"|"reverse")
	Confirmations metric.Int64Counter

	// UseDuration tracks the time spent resolving one use.
	UseDuration metric.Float64Histogram
}

// NewMetrics creates a fully initialised [Metrics] using the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Uses, err = m.Int64Counter("crucible.action.uses",
		metric.WithDescription("Action use attempts by status."),
	); err != nil {
		return nil, err
	}
	if met.HookFailures, err = m.Int64Counter("crucible.action.hook_failures",
		metric.WithDescription("Isolated hook failures by lifecycle phase."),
	); err != nil {
		return nil, err
	}
	if met.Confirmations, err = m.Int64Counter("crucible.action.confirmations",
		metric.WithDescription("Outcome maps applied or reversed."),
	); err != nil {
		return nil, err
	}
	if met.UseDuration, err = m.Float64Histogram("crucible.action.use.duration",
		metric.WithDescription("Latency of resolving one action use."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider].
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordUse records a use attempt with its status
func (m *Metrics) RecordUse(ctx context.Context, status string) {
	m.Uses.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordHookFailure records an isolated hook failure in a phase
func (m *Metrics) RecordHookFailure(ctx context.Context, phase string) {
	m.HookFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", phase)))
}

// RecordConfirmation records an applied or reversed outcome map
func (m *Metrics) RecordConfirmation(ctx context.Context, reverse bool) {
	mode := "confirm"
	if reverse {
		mode = "reverse"
	}
	m.Confirmations.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
}
