package config

import (
	"os"
	"strconv"
	"time"
)

const (
	leadTimeHoursEnv     = "LEAD_TIME_HOURS"
	businessStartHourEnv = "BUSINESS_START_HOUR"
	businessEndHourEnv   = "BUSINESS_END_HOUR"
	horizonDaysEnv       = "HORIZON_DAYS"
	slotStepMinutesEnv   = "SLOT_STEP_MINUTES"

	defaultLeadTimeHours     = 24
	defaultBusinessStartHour = 9
	defaultBusinessEndHour   = 17
	defaultHorizonDays       = 7
	defaultSlotStepMinutes   = 30
)

// SchedulingConfig holds the candidate slot policy. All hours are UTC.
type SchedulingConfig struct {
	LeadTime          time.Duration
	BusinessStartHour int
	BusinessEndHour   int
	HorizonDays       int
	SlotStep          time.Duration
	ExcludedWeekdays  map[time.Weekday]bool
}

func LoadSchedulingConfig() (*SchedulingConfig, error) {
	leadHours := defaultLeadTimeHours
	if v := os.Getenv(leadTimeHoursEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			leadHours = parsed
		}
	}

	startHour := defaultBusinessStartHour
	if v := os.Getenv(businessStartHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 24 {
			startHour = parsed
		}
	}

	endHour := defaultBusinessEndHour
	if v := os.Getenv(businessEndHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 24 {
			endHour = parsed
		}
	}

	horizonDays := defaultHorizonDays
	if v := os.Getenv(horizonDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			horizonDays = parsed
		}
	}

	stepMinutes := defaultSlotStepMinutes
	if v := os.Getenv(slotStepMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 60 {
			stepMinutes = parsed
		}
	}

	cfg := &SchedulingConfig{
		LeadTime:          time.Duration(leadHours) * time.Hour,
		BusinessStartHour: startHour,
		BusinessEndHour:   endHour,
		HorizonDays:       horizonDays,
		SlotStep:          time.Duration(stepMinutes) * time.Minute,
		ExcludedWeekdays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *SchedulingConfig) Validate() error {
	if c.BusinessStartHour >= c.BusinessEndHour {
		return ErrInvalidBusinessWindow
	}
	if c.SlotStep <= 0 || time.Hour%c.SlotStep != 0 {
		return ErrInvalidSlotStep
	}
	return nil
}

func (c *SchedulingConfig) IsBusinessDay(d time.Weekday) bool {
	return !c.ExcludedWeekdays[d]
}
