package services

import (
	"context"
	"fmt"

	"github.com/crewbase-dev/crewbase/internal/taskclient"
)

// UserTasksService assembles a user's tasks and motivation scores from the
// task/motivation service. Everything here is a synchronous HTTP call
// against the injected client.
type UserTasksService struct {
	client taskclient.Client
}

func NewUserTasksService(client taskclient.Client) *UserTasksService {
	return &UserTasksService{client: client}
}

// TasksFor returns the tasks the user has assigned.
func (s *UserTasksService) TasksFor(ctx context.Context, userID uint) ([]taskclient.Task, error) {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]taskclient.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.AssignedBy == userID {
			mine = append(mine, task)
		}
	}

	return mine, nil
}

func (s *UserTasksService) UpdateTask(ctx context.Context, taskID uint, update taskclient.TaskUpdate) error {
	return s.client.UpdateTask(ctx, taskID, update)
}

func (s *UserTasksService) DeleteTask(ctx context.Context, taskID uint) error {
	return s.client.DeleteTask(ctx, taskID)
}

// Motivation returns the per-task ratings of the user's tasks, keyed the
// way the original API exposed them. Tasks without a rating are skipped.
func (s *UserTasksService) Motivation(ctx context.Context, userID uint) (map[string]int, error) {
	tasks, err := s.TasksFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	grades := map[string]int{}
	for _, task := range tasks {
		motivation, err := s.client.MotivationByTask(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		if motivation != nil {
			grades[fmt.Sprintf("Task ID %d", task.ID)] = motivation.Rating
		}
	}

	return grades, nil
}

// QuarterlyMotivation is the mean of the user's per-task ratings; zero
// when there are none.
func (s *UserTasksService) QuarterlyMotivation(ctx context.Context, userID uint) (float64, error) {
	grades, err := s.Motivation(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(grades) == 0 {
		return 0, nil
	}

	sum := 0
	for _, rating := range grades {
		sum += rating
	}

	return float64(sum) / float64(len(grades)), nil
}
