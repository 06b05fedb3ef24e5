// Package metrics holds the instruments shared by the HTTP server and the
// operation handlers.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"geomcalc/pkg/serrors"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	meterName = "geomcalc"
)

// OperationObserver records one observation per evaluated geometry operation.
// The zero value and a nil pointer are valid and record nothing.
type OperationObserver struct {
	evaluations metric.Int64Counter
	duration    metric.Float64Histogram
	failures    *prometheus.CounterVec
}

// NewOperationObserver creates the otel instruments on mp and registers the
// failure counter with reg.
func NewOperationObserver(mp metric.MeterProvider, reg prometheus.Registerer) (*OperationObserver, error) {
	meter := mp.Meter(meterName)

	evaluations, err := meter.Int64Counter("geomcalc.operations",
		metric.WithDescription("Number of evaluated geometry operations."),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create operations counter")
	}

	duration, err := meter.Float64Histogram("geomcalc.operation.duration",
		metric.WithDescription("Time spent evaluating geometry operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create duration histogram")
	}

	failures := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "geomcalc_geometry_errors_total",
		Help: "Failed geometry operations by operation and error kind.",
	}, []string{"operation", "kind"})

	return &OperationObserver{
		evaluations: evaluations,
		duration:    duration,
		failures:    failures,
	}, nil
}

// Observe records an evaluation of operation. err is nil on success.
func (o *OperationObserver) Observe(ctx context.Context, operation string, duration time.Duration, err error) {
	if o == nil || o.evaluations == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	o.evaluations.Add(ctx, 1, attrs)
	o.duration.Record(ctx, duration.Seconds(), attrs)

	if err != nil {
		kind := serrors.ErrInternal.Error()
		if k := serrors.KindOf(err); k != nil {
			kind = k.Error()
		}
		o.failures.WithLabelValues(operation, kind).Inc()
	}
}
