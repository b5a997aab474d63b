package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const availabilityMeterName = "availability.service"

type AvailabilityMetrics struct {
	resolutionsTotal  metric.Int64Counter
	resolveDuration   metric.Float64Histogram
	candidateSlots    metric.Int64Histogram
	availableSlots    metric.Int64Histogram
	busyFetchDuration metric.Float64Histogram
}

func NewAvailabilityMetrics() (*AvailabilityMetrics, error) {
	meter := otel.Meter(availabilityMeterName)

	resolutionsTotal, err := meter.Int64Counter(
		"availability_resolutions_total",
		metric.WithDescription("Total number of availability resolutions"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, err
	}

	resolveDuration, err := meter.Float64Histogram(
		"availability_resolve_duration_seconds",
		metric.WithDescription("Time spent resolving availability end to end"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	candidateSlots, err := meter.Int64Histogram(
		"availability_candidate_slots",
		metric.WithDescription("Candidate slots generated per resolution"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	availableSlots, err := meter.Int64Histogram(
		"availability_available_slots",
		metric.WithDescription("Slots remaining after busy filtering per resolution"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	busyFetchDuration, err := meter.Float64Histogram(
		"availability_busy_fetch_duration_seconds",
		metric.WithDescription("Time spent fetching busy intervals from the provider"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	return &AvailabilityMetrics{
		resolutionsTotal:  resolutionsTotal,
		resolveDuration:   resolveDuration,
		candidateSlots:    candidateSlots,
		availableSlots:    availableSlots,
		busyFetchDuration: busyFetchDuration,
	}, nil
}

func (m *AvailabilityMetrics) RecordResolution(ctx context.Context, outcome string, duration time.Duration) {
	m.resolutionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.resolveDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *AvailabilityMetrics) RecordSlotCounts(ctx context.Context, candidates, available int) {
	m.candidateSlots.Record(ctx, int64(candidates))
	m.availableSlots.Record(ctx, int64(available))
}

func (m *AvailabilityMetrics) RecordBusyFetchDuration(ctx context.Context, duration time.Duration) {
	m.busyFetchDuration.Record(ctx, duration.Seconds())
}
