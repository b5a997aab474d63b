package domain

import "context"

// FreeBusyProvider returns the known busy intervals for each requested
// interviewer. Every requested ID is present in the result; an interviewer
// with no busy time maps to an empty slice.
type FreeBusyProvider interface {
	BusyIntervals(ctx context.Context, interviewerIDs []int64) (map[int64][]TimeInterval, error)
}

// BusyCache is a short-lived cache of provider busy data per interviewer.
type BusyCache interface {
	GetBusy(ctx context.Context, interviewerID int64) ([]TimeInterval, bool, error)
	SetBusy(ctx context.Context, interviewerID int64, intervals []TimeInterval) error
}
