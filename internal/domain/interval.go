package domain

import (
	"sort"
	"time"
)

// TimeInterval is a half-open-for-overlap time range with both endpoints in UTC.
// Instances built through NewTimeInterval always satisfy Start < End.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if start.IsZero() || end.IsZero() {
		return TimeInterval{}, ErrInvalidInterval
	}
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{
		Start: start.UTC(),
		End:   end.UTC(),
	}, nil
}

func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two intervals share a nonzero span.
// Touching endpoints (i.End == other.Start or other.End == i.Start) do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// SortIntervals orders intervals ascending by (Start, End) in place.
func SortIntervals(intervals []TimeInterval) {
	sort.Slice(intervals, func(a, b int) bool {
		if intervals[a].Start.Equal(intervals[b].Start) {
			return intervals[a].End.Before(intervals[b].End)
		}
		return intervals[a].Start.Before(intervals[b].Start)
	})
}
