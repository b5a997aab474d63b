package availability

import "github.com/candidatehub/interview-availability/internal/domain"

// Result is one availability resolution for an interview template.
type Result struct {
	Template       *domain.InterviewTemplate
	CandidateCount int
	Slots          []domain.TimeInterval
}
