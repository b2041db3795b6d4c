package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errMotivationNotFound = apperr.NotFound("motivation not found")
	errMotivationExists   = apperr.Conflict("a motivation for this task already exists")
)

type MotivationService struct {
	motivations *repository.Repository[models.Motivation]
	tasks       *repository.Repository[models.Task]
}

func NewMotivationService(database *gorm.DB) *MotivationService {
	return &MotivationService{
		motivations: repository.New[models.Motivation](database),
		tasks:       repository.New[models.Task](database),
	}
}

// Create stores a task's rating. A task can be rated once; a second
// attempt is a conflict.
func (s *MotivationService) Create(ctx context.Context, motivation models.Motivation) (*models.Motivation, error) {
	if motivation.Rating < 1 || motivation.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	task, err := s.tasks.FindByID(ctx, motivation.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errTaskNotFound
	}

	existing, err := s.motivations.FindOne(ctx, models.MotivationFilter{TaskID: &motivation.TaskID})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errMotivationExists
	}

	if err := s.motivations.Insert(ctx, &motivation); err != nil {
		return nil, err
	}

	return &motivation, nil
}

func (s *MotivationService) Update(ctx context.Context, motivationID uint, values models.MotivationValues) error {
	if values.Rating != nil && (*values.Rating < 1 || *values.Rating > 5) {
		return apperr.Validation("rating must be between 1 and 5")
	}

	rows, err := s.motivations.Update(ctx, models.MotivationFilter{ID: &motivationID}, values)
	return guard(rows, err, errMotivationNotFound)
}

func (s *MotivationService) Delete(ctx context.Context, motivationID uint) error {
	rows, err := s.motivations.Delete(ctx, models.MotivationFilter{ID: &motivationID})
	return guard(rows, err, errMotivationNotFound)
}

func (s *MotivationService) Get(ctx context.Context, motivationID uint) (*models.Motivation, error) {
	motivation, err := s.motivations.FindByID(ctx, motivationID)
	if err != nil {
		return nil, err
	}
	if motivation == nil {
		return nil, errMotivationNotFound
	}
	return motivation, nil
}

func (s *MotivationService) GetByTask(ctx context.Context, taskID uint) (*models.Motivation, error) {
	motivation, err := s.motivations.FindOne(ctx, models.MotivationFilter{TaskID: &taskID})
	if err != nil {
		return nil, err
	}
	if motivation == nil {
		return nil, errMotivationNotFound
	}
	return motivation, nil
}

func (s *MotivationService) All(ctx context.Context) ([]models.Motivation, error) {
	return s.motivations.FindAll(ctx, nil)
}
