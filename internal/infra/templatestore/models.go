package templatestore

import "github.com/candidatehub/interview-availability/internal/domain"

type interviewerModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (interviewerModel) TableName() string { return "interviewers" }

type templateModel struct {
	ID              int64              `gorm:"primaryKey"`
	Name            string             `gorm:"size:100;not null"`
	DurationMinutes int                `gorm:"not null"`
	Interviewers    []interviewerModel `gorm:"many2many:template_interviewers"`
}

func (templateModel) TableName() string { return "interview_templates" }

func (m *templateModel) toDomain() *domain.InterviewTemplate {
	interviewers := make([]domain.Interviewer, 0, len(m.Interviewers))
	for _, iv := range m.Interviewers {
		interviewers = append(interviewers, domain.Interviewer{
			ID:   iv.ID,
			Name: iv.Name,
		})
	}

	return &domain.InterviewTemplate{
		ID:              m.ID,
		Name:            m.Name,
		DurationMinutes: m.DurationMinutes,
		Interviewers:    interviewers,
	}
}
