package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	queueErrors "github.com/gethelpdesk/helpdesk/queues/errors"
	"github.com/gethelpdesk/helpdesk/queues/models"
)

type postgresQueueRepository struct {
	client *postgres.Client
}

// NewPostgresQueueRepository creates a new PostgreSQL queue repository.
func NewPostgresQueueRepository(client *postgres.Client) QueueRepository {
	return &postgresQueueRepository{client: client}
}

func (r *postgresQueueRepository) Create(ctx context.Context, queue *models.Queue) error {
	query := `
		INSERT INTO queues (agent_id, title, filters, sorts) VALUES ($1, $2, $3, $4)
		RETURNING queue_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query,
		queue.AgentID, queue.Title, queue.Filters, queue.Sorts).
		Scan(&queue.QueueID, &queue.Updated, &queue.Created)
	if err != nil {
		return fmt.Errorf("failed to create queue: %w", err)
	}
	return nil
}

func (r *postgresQueueRepository) FindByID(ctx context.Context, queueID int64) (*models.Queue, error) {
	var queue models.Queue
	query := `SELECT queue_id, agent_id, title, filters, sorts, updated, created FROM queues WHERE queue_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &queue, query, queueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", queueErrors.ErrQueueNotFound, queueID)
		}
		return nil, fmt.Errorf("failed to find queue: %w", err)
	}
	return &queue, nil
}

func (r *postgresQueueRepository) ListVisible(ctx context.Context, agentID int64) ([]models.Queue, error) {
	queues := []models.Queue{}
	query := `
		SELECT queue_id, agent_id, title, filters, sorts, updated, created
		FROM queues
		WHERE agent_id IS NULL OR agent_id = $1
		ORDER BY title`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &queues, query, agentID); err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}
	return queues, nil
}

func (r *postgresQueueRepository) Update(ctx context.Context, queue *models.Queue) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE queues SET title = $1, filters = $2, sorts = $3, updated = NOW() WHERE queue_id = $4`,
		queue.Title, queue.Filters, queue.Sorts, queue.QueueID)
	if err != nil {
		return fmt.Errorf("failed to update queue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", queueErrors.ErrQueueNotFound, queue.QueueID)
	}
	return nil
}

func (r *postgresQueueRepository) Delete(ctx context.Context, queueID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM queues WHERE queue_id = $1`, queueID)
	if err != nil {
		return fmt.Errorf("failed to delete queue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", queueErrors.ErrQueueNotFound, queueID)
	}
	return nil
}
