package domain

import "context"

type TemplateRepository interface {
	GetByID(ctx context.Context, id int64) (*InterviewTemplate, error)
}
