package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	taskErrors "github.com/gethelpdesk/helpdesk/tasks/errors"
	"github.com/gethelpdesk/helpdesk/tasks/models"
)

type postgresTaskRepository struct {
	client *postgres.Client
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(client *postgres.Client) TaskRepository {
	return &postgresTaskRepository{client: client}
}

const taskColumns = `task_id, number, title, dept_id, agent_id, group_id, due_date, closed, updated, created`

func (r *postgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (number, title, dept_id, agent_id, group_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query,
		task.Number, task.Title, task.DeptID, task.AgentID, task.GroupID, task.DueDate).
		Scan(&task.TaskID, &task.Updated, &task.Created)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *postgresTaskRepository) FindByID(ctx context.Context, taskID int64) (*models.Task, error) {
	var task models.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &task, query, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", taskErrors.ErrTaskNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func (r *postgresTaskRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM tasks WHERE number = $1)`
	if err := r.client.Executor(ctx).QueryRowxContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check task number: %w", err)
	}
	return exists, nil
}

func (r *postgresTaskRepository) List(ctx context.Context, limit, offset int) ([]models.Task, error) {
	tasks := []models.Task{}
	query := `
		SELECT ` + taskColumns + ` FROM tasks
		ORDER BY closed IS NOT NULL, created DESC
		LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &tasks, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *postgresTaskRepository) Update(ctx context.Context, task *models.Task) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `
		UPDATE tasks
		SET title = $1, dept_id = $2, agent_id = $3, group_id = $4, due_date = $5, updated = NOW()
		WHERE task_id = $6`,
		task.Title, task.DeptID, task.AgentID, task.GroupID, task.DueDate, task.TaskID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return r.checkAffected(res, task.TaskID)
}

func (r *postgresTaskRepository) SetClosed(ctx context.Context, taskID int64, closed bool) error {
	query := `UPDATE tasks SET closed = NOW(), updated = NOW() WHERE task_id = $1`
	if !closed {
		query = `UPDATE tasks SET closed = NULL, updated = NOW() WHERE task_id = $1`
	}
	res, err := r.client.Executor(ctx).ExecContext(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to set task closed state: %w", err)
	}
	return r.checkAffected(res, taskID)
}

func (r *postgresTaskRepository) Delete(ctx context.Context, taskID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return r.checkAffected(res, taskID)
}

func (r *postgresTaskRepository) checkAffected(res sql.Result, taskID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", taskErrors.ErrTaskNotFound, taskID)
	}
	return nil
}
