package slot

import (
	"time"

	"github.com/candidatehub/interview-availability/internal/config"
	"github.com/candidatehub/interview-availability/internal/domain"
)

// Generator produces every structurally valid candidate interview slot for a
// requested duration under the configured scheduling policy.
type Generator struct {
	policy *config.SchedulingConfig
}

func NewGenerator(policy *config.SchedulingConfig) *Generator {
	return &Generator{policy: policy}
}

// Generate returns candidate slots ordered ascending by start time. Output is
// fully deterministic for a fixed now. Slots start on a step boundary, begin
// no earlier than now plus the lead time, fall on business days only, and fit
// entirely inside the business window of their date.
func (g *Generator) Generate(now time.Time, durationMinutes int) ([]domain.TimeInterval, error) {
	if durationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	duration := time.Duration(durationMinutes) * time.Minute

	earliest := g.roundUpToStep(now.UTC().Add(g.policy.LeadTime))
	leadDay := time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]domain.TimeInterval, 0)

	for day := 0; day < g.policy.HorizonDays; day++ {
		date := leadDay.AddDate(0, 0, day)
		if !g.policy.IsBusinessDay(date.Weekday()) {
			continue
		}

		floor := date.Add(time.Duration(g.policy.BusinessStartHour) * time.Hour)
		if day == 0 && earliest.After(floor) {
			floor = earliest
		}
		ceiling := date.Add(time.Duration(g.policy.BusinessEndHour) * time.Hour)

		// Every step mark in [floor, ceiling) is visited; marks whose slot
		// would spill past the ceiling are skipped, not used as an exit.
		for t := floor; t.Before(ceiling); t = t.Add(g.policy.SlotStep) {
			end := t.Add(duration)
			if end.After(ceiling) {
				continue
			}
			slots = append(slots, domain.TimeInterval{Start: t, End: end})
		}
	}

	return slots, nil
}

// roundUpToStep advances t to the next step boundary, never backward. A
// sub-minute remainder first advances to the next whole minute, carrying
// across hour and day boundaries as needed.
func (g *Generator) roundUpToStep(t time.Time) time.Time {
	if t.Second() > 0 || t.Nanosecond() > 0 {
		t = t.Truncate(time.Minute).Add(time.Minute)
	} else {
		t = t.Truncate(time.Minute)
	}

	stepMinutes := int(g.policy.SlotStep / time.Minute)
	if rem := t.Minute() % stepMinutes; rem != 0 {
		t = t.Add(time.Duration(stepMinutes-rem) * time.Minute)
	}
	return t
}
