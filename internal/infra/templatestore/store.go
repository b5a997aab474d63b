package templatestore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/candidatehub/interview-availability/internal/domain"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&interviewerModel{}, &templateModel{})
}

func (s *Store) GetByID(ctx context.Context, id int64) (*domain.InterviewTemplate, error) {
	var model templateModel

	err := s.db.WithContext(ctx).
		Preload("Interviewers").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("load interview template %d: %w", id, err)
	}

	return model.toDomain(), nil
}
