package availabilityrecorder

import (
	"context"

	"github.com/candidatehub/interview-availability/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AvailabilityRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordComputation(_ context.Context, _ domain.AvailabilityRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
