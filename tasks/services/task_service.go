package services

import (
	"context"
	"fmt"

	"github.com/gethelpdesk/helpdesk/internal/pkg/refnum"
	taskErrors "github.com/gethelpdesk/helpdesk/tasks/errors"
	"github.com/gethelpdesk/helpdesk/tasks/models"
	"github.com/gethelpdesk/helpdesk/tasks/repository"
)

// TaskService defines the interface for task operations.
type TaskService interface {
	// Create generates a reference number and stores the task.
	Create(ctx context.Context, params *models.UpsertTaskParams) (*models.Task, error)

	Get(ctx context.Context, taskID int64) (*models.Task, error)
	List(ctx context.Context, page, size int) ([]models.Task, error)
	Update(ctx context.Context, taskID int64, params *models.UpsertTaskParams) (*models.Task, error)

	// Close stamps the task closed; Reopen clears the stamp.
	Close(ctx context.Context, taskID int64) error
	Reopen(ctx context.Context, taskID int64) error

	Delete(ctx context.Context, taskID int64) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new instance of the task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, params *models.UpsertTaskParams) (*models.Task, error) {
	if params == nil || params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", taskErrors.ErrInvalidTaskData)
	}

	number, err := refnum.Generate(ctx, s.repo.NumberExists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", taskErrors.ErrNumberExhausted, err)
	}

	task := &models.Task{
		Number:  number,
		Title:   params.Title,
		DeptID:  params.DeptID,
		AgentID: params.AgentID,
		GroupID: params.GroupID,
		DueDate: params.DueDate,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, taskID int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, taskID)
}

func (s *taskService) List(ctx context.Context, page, size int) ([]models.Task, error) {
	if size <= 0 || size > 100 {
		size = 25
	}
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, size, (page-1)*size)
}

func (s *taskService) Update(ctx context.Context, taskID int64, params *models.UpsertTaskParams) (*models.Task, error) {
	if params == nil || params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", taskErrors.ErrInvalidTaskData)
	}

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Title = params.Title
	task.DeptID = params.DeptID
	task.AgentID = params.AgentID
	task.GroupID = params.GroupID
	task.DueDate = params.DueDate

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, taskID)
}

func (s *taskService) Close(ctx context.Context, taskID int64) error {
	return s.repo.SetClosed(ctx, taskID, true)
}

func (s *taskService) Reopen(ctx context.Context, taskID int64) error {
	return s.repo.SetClosed(ctx, taskID, false)
}

func (s *taskService) Delete(ctx context.Context, taskID int64) error {
	return s.repo.Delete(ctx, taskID)
}
