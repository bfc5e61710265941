package service

import (
	"context"

	"github.com/atinyakov/taskwarden/internal/models"
)

// TaskRepository defines the persistence operations needed by the TaskService.
type TaskRepository interface {
	// ListByOwner retrieves tasks of the given user ordered by due date,
	// optionally restricted to an exact status match, windowed by
	// limit/offset.
	ListByOwner(ctx context.Context, userID, status string, limit, offset int) ([]models.Task, error)
	// CreateTask inserts a new task owned by userID.
	CreateTask(ctx context.Context, userID string, task models.Task) error
	// UpdateTask replaces the task matching id and userID.
	// Returns apperrors.ErrNotFound when no row matched.
	UpdateTask(ctx context.Context, userID, id string, task models.Task) error
	// DeleteTask removes the task matching id and userID.
	// Returns apperrors.ErrNotFound when no row matched.
	DeleteTask(ctx context.Context, userID, id string) error
	// DueSoon retrieves the user's tasks due within the next two days.
	DueSoon(ctx context.Context, userID string) ([]models.Task, error)
}

// TaskService implements task management on top of a TaskRepository.
type TaskService struct {
	// repo is the underlying persistence repository.
	repo TaskRepository
}

// NewTaskService constructs a TaskService with the provided TaskRepository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the page-th page (1-based) of the user's tasks, limit rows
// per page, ordered ascending by due date, optionally filtered by status.
func (s *TaskService) List(ctx context.Context, userID, status string, page, limit int) ([]models.Task, error) {
	offset := (page - 1) * limit
	return s.repo.ListByOwner(ctx, userID, status, limit, offset)
}

// Create inserts a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID string, task models.Task) error {
	return s.repo.CreateTask(ctx, userID, task)
}

// Update replaces the task with the given id if it belongs to userID.
func (s *TaskService) Update(ctx context.Context, userID, id string, task models.Task) error {
	return s.repo.UpdateTask(ctx, userID, id, task)
}

// Delete removes the task with the given id if it belongs to userID.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteTask(ctx, userID, id)
}

// DueSoon returns the user's tasks due today, tomorrow or the day after.
func (s *TaskService) DueSoon(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repo.DueSoon(ctx, userID)
}
