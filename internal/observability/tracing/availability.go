package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const availabilityTracerName = "github.com/candidatehub/interview-availability/internal/service/availability"

func AvailabilityTracer() trace.Tracer {
	return otel.Tracer(availabilityTracerName)
}

func StartSlotGenerationSpan(ctx context.Context, now time.Time, durationMinutes int) (context.Context, trace.Span) {
	return AvailabilityTracer().Start(ctx, "availability.slot_generation",
		trace.WithAttributes(
			attribute.String("slot.now", now.Format(time.RFC3339)),
			attribute.Int("slot.duration_minutes", durationMinutes),
		),
	)
}

func RecordSlotGenerationResult(span trace.Span, candidateCount int, err error) {
	span.SetAttributes(
		attribute.Int("slot.candidate_count", candidateCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartBusyFetchSpan(ctx context.Context, participantCount int) (context.Context, trace.Span) {
	return AvailabilityTracer().Start(ctx, "availability.busy_fetch",
		trace.WithAttributes(
			attribute.Int("busy.participant_count", participantCount),
		),
	)
}

func RecordBusyFetchResult(span trace.Span, intervalCount, cacheHits int, err error) {
	span.SetAttributes(
		attribute.Int("busy.interval_count", intervalCount),
		attribute.Int("busy.cache_hits", cacheHits),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartFilterSpan(ctx context.Context, candidateCount, participantCount int) (context.Context, trace.Span) {
	return AvailabilityTracer().Start(ctx, "availability.busy_filter",
		trace.WithAttributes(
			attribute.Int("filter.candidate_count", candidateCount),
			attribute.Int("filter.participant_count", participantCount),
		),
	)
}

func RecordFilterResult(span trace.Span, availableCount int) {
	span.SetAttributes(
		attribute.Int("filter.available_count", availableCount),
	)
	span.SetStatus(codes.Ok, "")
}

func StartProviderCallSpan(ctx context.Context, url string) (context.Context, trace.Span) {
	return AvailabilityTracer().Start(ctx, "availability.provider_call",
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordProviderCallResult(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
