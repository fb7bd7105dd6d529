package field

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	computationsCounter metric.Int64Counter
	samplesCounter      metric.Int64Counter
	durationHistogram   metric.Float64Histogram
	errorCounter        metric.Int64Counter
	peakFieldGauge      metric.Float64Gauge
)

// InitMetrics registers the OTel metric instruments for the field domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("field")

	var err error

	computationsCounter, err = meter.Int64Counter("field.computations.total",
		metric.WithDescription("Total number of field computation requests served"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return fmt.Errorf("creating computations counter: %w", err)
	}

	samplesCounter, err = meter.Int64Counter("field.samples.total",
		metric.WithDescription("Total number of field samples produced"),
		metric.WithUnit("{sample}"),
	)
	if err != nil {
		return fmt.Errorf("creating samples counter: %w", err)
	}

	durationHistogram, err = meter.Float64Histogram("field.computation.duration",
		metric.WithDescription("Duration of field computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("field.errors.total",
		metric.WithDescription("Total number of rejected field computation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	peakFieldGauge, err = meter.Float64Gauge("field.last_peak_tesla",
		metric.WithDescription("Strongest field magnitude in the last computed batch"),
		metric.WithUnit("T"),
	)
	if err != nil {
		return fmt.Errorf("creating peak field gauge: %w", err)
	}

	return nil
}
