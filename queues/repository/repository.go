package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/queues/models"
)

// QueueRepository defines the interface for queue database operations.
type QueueRepository interface {
	Create(ctx context.Context, queue *models.Queue) error
	FindByID(ctx context.Context, queueID int64) (*models.Queue, error)

	// ListVisible returns shared queues plus the agent's own.
	ListVisible(ctx context.Context, agentID int64) ([]models.Queue, error)

	Update(ctx context.Context, queue *models.Queue) error
	Delete(ctx context.Context, queueID int64) error
}
