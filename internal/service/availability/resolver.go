package availability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/candidatehub/interview-availability/internal/domain"
	"github.com/candidatehub/interview-availability/internal/observability/logging"
	"github.com/candidatehub/interview-availability/internal/observability/metrics"
	"github.com/candidatehub/interview-availability/internal/observability/tracing"
	"github.com/candidatehub/interview-availability/internal/service/slot"
)

type Service struct {
	templates           domain.TemplateRepository
	provider            domain.FreeBusyProvider
	cache               domain.BusyCache
	generator           *slot.Generator
	availabilityMetrics *metrics.AvailabilityMetrics
	recorder            domain.AvailabilityRecorder
}

func NewService(
	templates domain.TemplateRepository,
	provider domain.FreeBusyProvider,
	cache domain.BusyCache,
	generator *slot.Generator,
	availabilityMetrics *metrics.AvailabilityMetrics,
	recorder domain.AvailabilityRecorder,
) *Service {
	return &Service{
		templates:           templates,
		provider:            provider,
		cache:               cache,
		generator:           generator,
		availabilityMetrics: availabilityMetrics,
		recorder:            recorder,
	}
}

// ResolveTemplate computes the slots during which every interviewer on the
// template is free, within the configured scheduling horizon from now.
func (s *Service) ResolveTemplate(ctx context.Context, templateID int64, now time.Time) (*Result, error) {
	started := time.Now()

	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		s.recordResolution(ctx, outcomeForError(err), time.Since(started))
		return nil, err
	}

	interviewerIDs := template.InterviewerIDs()

	slots, candidateCount, err := s.resolve(ctx, now, interviewerIDs, template.DurationMinutes)
	elapsed := time.Since(started)
	if err != nil {
		s.recordResolution(ctx, outcomeForError(err), elapsed)
		s.record(ctx, template, now, candidateCount, 0, outcomeForError(err), elapsed)
		return nil, err
	}

	outcome := "ok"
	if len(slots) == 0 {
		outcome = "empty"
	}

	s.recordResolution(ctx, outcome, elapsed)
	if s.availabilityMetrics != nil {
		s.availabilityMetrics.RecordSlotCounts(ctx, candidateCount, len(slots))
	}
	s.record(ctx, template, now, candidateCount, len(slots), outcome, elapsed)

	slog.InfoContext(ctx, "availability resolved",
		slog.Int64("template_id", template.ID),
		slog.Int("duration_minutes", template.DurationMinutes),
		slog.Int("interviewer_count", len(interviewerIDs)),
		slog.Int("candidate_count", candidateCount),
		slog.Int("available_count", len(slots)),
	)

	return &Result{
		Template:       template,
		CandidateCount: candidateCount,
		Slots:          slots,
	}, nil
}

func (s *Service) resolve(ctx context.Context, now time.Time, interviewerIDs []int64, durationMinutes int) ([]domain.TimeInterval, int, error) {
	_, genSpan := tracing.StartSlotGenerationSpan(ctx, now, durationMinutes)
	candidates, err := s.generator.Generate(now, durationMinutes)
	tracing.RecordSlotGenerationResult(genSpan, len(candidates), err)
	genSpan.End()
	if err != nil {
		return nil, 0, err
	}

	busyByInterviewer, err := s.fetchBusy(ctx, interviewerIDs)
	if err != nil {
		return nil, len(candidates), err
	}

	filterCtx, filterSpan := tracing.StartFilterSpan(ctx, len(candidates), len(interviewerIDs))
	defer filterSpan.End()

	// Each interviewer's pass starts from the previous pass's output, so the
	// remaining set only ever narrows.
	available := candidates
	for _, id := range interviewerIDs {
		busy := busyByInterviewer[id]
		if len(busy) == 0 {
			continue
		}
		// The sweep depends on ascending (start, end) order; sort defensively
		// rather than trusting the provider.
		domain.SortIntervals(busy)
		available = filterFree(available, busy)

		slog.DebugContext(filterCtx, "filtered candidates against busy intervals",
			slog.Int64("interviewer_id", id),
			slog.Int("busy_count", len(busy)),
			slog.Int("remaining", len(available)),
		)
	}

	tracing.RecordFilterResult(filterSpan, len(available))
	return available, len(candidates), nil
}

// fetchBusy returns busy intervals for every requested interviewer,
// read-through against the cache. Cache failures degrade to a provider fetch;
// provider failures fail the whole resolution so availability is never
// overstated by dropping one participant's constraints.
func (s *Service) fetchBusy(ctx context.Context, interviewerIDs []int64) (map[int64][]domain.TimeInterval, error) {
	fetchStart := time.Now()
	fetchCtx, fetchSpan := tracing.StartBusyFetchSpan(ctx, len(interviewerIDs))
	defer fetchSpan.End()

	busy := make(map[int64][]domain.TimeInterval, len(interviewerIDs))
	missing := make([]int64, 0, len(interviewerIDs))
	cacheHits := 0

	for _, id := range interviewerIDs {
		if s.cache == nil {
			missing = append(missing, id)
			continue
		}
		intervals, ok, err := s.cache.GetBusy(fetchCtx, id)
		if err != nil {
			slog.WarnContext(fetchCtx, "busy cache read failed, falling back to provider",
				slog.Int64("interviewer_id", id),
				slog.String("error", err.Error()),
			)
			missing = append(missing, id)
			continue
		}
		if !ok {
			missing = append(missing, id)
			continue
		}
		busy[id] = intervals
		cacheHits++
	}

	if len(missing) > 0 {
		fetched, err := s.provider.BusyIntervals(fetchCtx, missing)
		if err != nil {
			tracing.RecordBusyFetchResult(fetchSpan, 0, cacheHits, err)
			return nil, err
		}
		for _, id := range missing {
			intervals := fetched[id]
			busy[id] = intervals
			if s.cache == nil {
				continue
			}
			if err := s.cache.SetBusy(fetchCtx, id, intervals); err != nil {
				slog.WarnContext(fetchCtx, "busy cache write failed",
					slog.Int64("interviewer_id", id),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	total := 0
	for _, intervals := range busy {
		total += len(intervals)
	}
	tracing.RecordBusyFetchResult(fetchSpan, total, cacheHits, nil)
	if s.availabilityMetrics != nil {
		s.availabilityMetrics.RecordBusyFetchDuration(fetchCtx, time.Since(fetchStart))
	}

	return busy, nil
}

// filterFree keeps the candidates that do not overlap any busy interval. Both
// inputs must be sorted ascending by (start, end); the scan advances each
// side monotonically, O(len(candidates) + len(busy)). Adjacency is free: a
// candidate ending exactly when a busy interval starts (or starting exactly
// when one ends) is kept.
func filterFree(candidates, busy []domain.TimeInterval) []domain.TimeInterval {
	if len(busy) == 0 {
		return candidates
	}

	kept := make([]domain.TimeInterval, 0, len(candidates))
	bi := 0
	for _, c := range candidates {
		for bi < len(busy) && !busy[bi].End.After(c.Start) {
			bi++
		}
		if bi >= len(busy) || !c.End.After(busy[bi].Start) {
			kept = append(kept, c)
		}
	}
	return kept
}

func (s *Service) recordResolution(ctx context.Context, outcome string, elapsed time.Duration) {
	if s.availabilityMetrics != nil {
		s.availabilityMetrics.RecordResolution(ctx, outcome, elapsed)
	}
}

func (s *Service) record(ctx context.Context, template *domain.InterviewTemplate, now time.Time, candidates, available int, outcome string, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}

	record := domain.AvailabilityRecord{
		TemplateID:       template.ID,
		RequestID:        logging.RequestIDFromContext(ctx),
		ComputedAt:       now.UTC(),
		DurationMinutes:  template.DurationMinutes,
		ParticipantCount: len(template.Interviewers),
		CandidateCount:   candidates,
		AvailableCount:   available,
		Outcome:          outcome,
		Elapsed:          elapsed,
	}
	if err := s.recorder.RecordComputation(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record availability computation",
			slog.Int64("template_id", template.ID),
			slog.String("error", err.Error()),
		)
	}
}

func outcomeForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return "template_not_found"
	case errors.Is(err, domain.ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, domain.ErrMalformedBusyData):
		return "malformed_busy_data"
	default:
		return "error"
	}
}
