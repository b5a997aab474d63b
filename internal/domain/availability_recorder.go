package domain

import (
	"context"
	"time"
)

type AvailabilityRecord struct {
	TemplateID       int64
	RequestID        string
	ComputedAt       time.Time
	DurationMinutes  int
	ParticipantCount int
	CandidateCount   int
	AvailableCount   int
	Outcome          string
	Elapsed          time.Duration
}

// AvailabilityRecorder persists computation outcomes for offline analysis.
// Recording failures must never fail the request that produced the record.
type AvailabilityRecorder interface {
	RecordComputation(ctx context.Context, record AvailabilityRecord) error
	Flush(ctx context.Context) error
	Close() error
}
