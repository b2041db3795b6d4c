package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var (
	errTaskNotFound = apperr.NotFound("task not found")
	errTaskExists   = apperr.Conflict("a task with this title already exists")
)

type TaskService struct {
	tasks *repository.Repository[models.Task]
}

func NewTaskService(database *gorm.DB) *TaskService {
	return &TaskService{tasks: repository.New[models.Task](database)}
}

// Create stores a task. AssignedBy must already be stamped with the
// caller's identity by the handler.
func (s *TaskService) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	existing, err := s.tasks.FindOne(ctx, models.TaskFilter{Title: &task.Title})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errTaskExists
	}

	if task.Status == "" {
		task.Status = models.TaskCreated
	}
	if !task.Status.Valid() {
		return nil, apperr.Validation("unknown task status")
	}

	if err := s.tasks.Insert(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, taskID uint, values models.TaskValues) error {
	if values.Status != nil && !values.Status.Valid() {
		return apperr.Validation("unknown task status")
	}

	rows, err := s.tasks.Update(ctx, models.TaskFilter{ID: &taskID}, values)
	return guard(rows, err, errTaskNotFound)
}

func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	rows, err := s.tasks.Delete(ctx, models.TaskFilter{ID: &taskID})
	return guard(rows, err, errTaskNotFound)
}

func (s *TaskService) Get(ctx context.Context, taskID uint) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (s *TaskService) All(ctx context.Context) ([]models.Task, error) {
	return s.tasks.FindAll(ctx, nil)
}
