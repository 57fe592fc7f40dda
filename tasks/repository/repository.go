package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/tasks/models"
)

// TaskRepository defines the interface for task database operations.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, taskID int64) (*models.Task, error)
	NumberExists(ctx context.Context, number string) (bool, error)

	// List returns tasks, open ones first, newest within each group.
	List(ctx context.Context, limit, offset int) ([]models.Task, error)

	Update(ctx context.Context, task *models.Task) error

	// SetClosed stamps or clears the closed marker.
	SetClosed(ctx context.Context, taskID int64, closed bool) error

	Delete(ctx context.Context, taskID int64) error
}
