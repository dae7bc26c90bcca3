package service

import (
	"context"
	"errors"

	"todoapi/internal/model"
	"todoapi/internal/repository"
)

// UserStore is the slice of the persistence layer the service reads users
// through.
type UserStore interface {
	ListAll(ctx context.Context) ([]model.User, error)
}

// TaskStore is the slice of the persistence layer the service reads and
// writes tasks through.
type TaskStore interface {
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	GetByUserID(ctx context.Context, userID uint) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id uint, status model.Status) error
}

var (
	_ UserStore = (*repository.UserRepository)(nil)
	_ TaskStore = (*repository.TaskRepository)(nil)
)

// TaskService holds the business rules over the store. It is the only
// place where status values are validated and normalized.
type TaskService struct {
	users UserStore
	tasks TaskStore
}

func NewTaskService(users UserStore, tasks TaskStore) *TaskService {
	return &TaskService{users: users, tasks: tasks}
}

func (s *TaskService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListAll(ctx)
}

// GetTasksForUser returns the tasks owned by the given user. The user's
// existence is deliberately not checked; an unknown id yields an empty
// result.
func (s *TaskService) GetTasksForUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.tasks.GetByUserID(ctx, userID)
}

// UpdateTaskStatus normalizes rawStatus and, when it maps to a canonical
// value and the task exists, persists it. It reports false both for an
// unrecognized status and for a missing task; the store is never touched
// when normalization fails. Re-applying the same status is a no-op write
// that still succeeds.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID uint, rawStatus string) (bool, error) {
	status, ok := model.NormalizeStatus(rawStatus)
	if !ok {
		return false, nil
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
