package field

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Kawakarlyndo/Campomagnetico/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the field domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("field")

const apiVersion = "1.0"

// defaultProfilePoints is used when /api/profile omits the points parameter.
const defaultProfilePoints = 50

// maxProfilePoints caps a single profile sweep.
const maxProfilePoints = 2000

// HandleStatus handles GET /api/status.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:      "magnetic field API running",
		Version:     apiVersion,
		Description: "Biot-Savart law for a long straight wire",
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// HandleCompute handles POST /api/compute: applies the Biot-Savart law to
// every distance in the request and returns the samples in input order.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "field.compute",
		trace.WithAttributes(
			attribute.String("field.operation", "compute"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("field.current_amperes", req.Current),
		attribute.Int("field.distances_count", len(req.Distances)),
	)

	start := time.Now()
	samples, err := Compute(req.Current, req.Distances)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		recordDomainError(ctx, span, logger, "compute", err, w)
		return
	}

	finishComputation(ctx, span, "compute", samples, elapsed)

	logger.Info("field computation completed",
		zap.String("operation", "compute"),
		zap.Float64("current", req.Current),
		zap.Int("samples", len(samples)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeResults(w, samples)
}

// HandleProfile handles GET /api/profile: sweeps a distance range at fixed
// current and returns an evenly sampled field curve for charting.
func HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "field.profile",
		trace.WithAttributes(
			attribute.String("field.operation", "profile"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	q := r.URL.Query()

	current, err := parseQueryFloat(q.Get("current"), "current")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "profile", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	min, err := parseQueryFloat(q.Get("min"), "min")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "profile", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	max, err := parseQueryFloat(q.Get("max"), "max")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "profile", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	points := defaultProfilePoints
	if raw := q.Get("points"); raw != "" {
		points, err = strconv.Atoi(raw)
		if err != nil {
			err = fmt.Errorf("query parameter %q is not an integer: %q", "points", raw)
			observability.RecordError(ctx, span, logger, errorCounter, "profile", err.Error(), err, http.StatusBadRequest, w)
			return
		}
	}
	if points > maxProfilePoints {
		points = maxProfilePoints
	}

	span.SetAttributes(
		attribute.Float64("field.current_amperes", current),
		attribute.Float64("field.range_min_meters", min),
		attribute.Float64("field.range_max_meters", max),
		attribute.Int("field.points", points),
	)

	start := time.Now()
	samples, err := Profile(current, min, max, points)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		recordDomainError(ctx, span, logger, "profile", err, w)
		return
	}

	finishComputation(ctx, span, "profile", samples, elapsed)

	logger.Info("field profile completed",
		zap.String("operation", "profile"),
		zap.Float64("current", current),
		zap.Float64("min", min),
		zap.Float64("max", max),
		zap.Int("samples", len(samples)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeResults(w, samples)
}

// recordDomainError maps calculator errors onto HTTP statuses: InvalidInput
// is the client's fault, anything else is unexpected.
func recordDomainError(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error, w http.ResponseWriter) {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, invalid.Error(), err, http.StatusBadRequest, w)
		return
	}
	observability.RecordError(ctx, span, logger, errorCounter, opName, "internal error", err, http.StatusInternalServerError, w)
}

// finishComputation records the success-path metrics and span bookkeeping
// shared by compute and profile.
func finishComputation(ctx context.Context, span trace.Span, opName string, samples []Sample, elapsedMs float64) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	computationsCounter.Add(ctx, 1, attrs)
	samplesCounter.Add(ctx, int64(len(samples)), attrs)
	durationHistogram.Record(ctx, elapsedMs, attrs)

	peak := 0.0
	for _, s := range samples {
		if s.Magnitude > peak {
			peak = s.Magnitude
		}
	}
	peakFieldGauge.Record(ctx, peak, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int("samples", len(samples)),
		attribute.Float64("peak_tesla", peak),
		attribute.Float64("duration_ms", elapsedMs),
	))
	span.SetAttributes(attribute.Float64("field.peak_tesla", peak))
	span.SetStatus(codes.Ok, "")
}

func writeResults(w http.ResponseWriter, samples []Sample) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ComputeResponse{Results: toResults(samples)})
}

func parseQueryFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("query parameter %q is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q is not a number: %q", name, raw)
	}
	return v, nil
}
