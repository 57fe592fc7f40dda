package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	agentErrors "github.com/gethelpdesk/helpdesk/agents/errors"
	"github.com/gethelpdesk/helpdesk/agents/models"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
)

type postgresAgentRepository struct {
	client *postgres.Client
}

// NewPostgresAgentRepository creates a new PostgreSQL agent repository.
func NewPostgresAgentRepository(client *postgres.Client) AgentRepository {
	return &postgresAgentRepository{client: client}
}

const agentColumns = `agent_id, dept_id, role_id, email, username, password, phone,
	firstname, lastname, signature, timezone, admin, updated, created`

// uniqueViolation is the Postgres error code for duplicate key rows.
const uniqueViolation = "23505"

func (r *postgresAgentRepository) Create(ctx context.Context, agent *models.Agent) error {
	query := `
		INSERT INTO agents (dept_id, role_id, email, username, password, phone, firstname, lastname, signature, timezone, admin)
		VALUES (:dept_id, :role_id, :email, :username, :password, :phone, :firstname, :lastname, :signature, :timezone, :admin)
		RETURNING agent_id, updated, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.client.Executor(ctx), query, agent)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email=%s", agentErrors.ErrDuplicateAgent, agent.Email)
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to create agent: no row returned")
	}
	if err := rows.Scan(&agent.AgentID, &agent.Updated, &agent.Created); err != nil {
		return fmt.Errorf("failed to scan created agent: %w", err)
	}
	return nil
}

func (r *postgresAgentRepository) FindByID(ctx context.Context, agentID int64) (*models.Agent, error) {
	var agent models.Agent
	query := `SELECT ` + agentColumns + ` FROM agents WHERE agent_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &agent, query, agentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", agentErrors.ErrAgentNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return &agent, nil
}

func (r *postgresAgentRepository) FindByEmail(ctx context.Context, email string) (*models.Agent, error) {
	var agent models.Agent
	query := `SELECT ` + agentColumns + ` FROM agents WHERE email = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &agent, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: email=%s", agentErrors.ErrAgentNotFound, email)
		}
		return nil, fmt.Errorf("failed to find agent by email: %w", err)
	}
	return &agent, nil
}

func (r *postgresAgentRepository) List(ctx context.Context, limit, offset int) ([]models.Agent, error) {
	agents := []models.Agent{}
	query := `SELECT ` + agentColumns + ` FROM agents ORDER BY lastname, firstname, agent_id LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &agents, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (r *postgresAgentRepository) Update(ctx context.Context, agent *models.Agent) error {
	query := `
		UPDATE agents SET dept_id = :dept_id, role_id = :role_id, email = :email, username = :username,
			phone = :phone, firstname = :firstname, lastname = :lastname, signature = :signature,
			timezone = :timezone, admin = :admin, updated = NOW()
		WHERE agent_id = :agent_id`
	res, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, agent)
	if err != nil {
		return fmt.Errorf("failed to update agent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", agentErrors.ErrAgentNotFound, agent.AgentID)
	}
	return nil
}

func (r *postgresAgentRepository) UpdatePassword(ctx context.Context, agentID int64, passwordHash string) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE agents SET password = $1, updated = NOW() WHERE agent_id = $2`, passwordHash, agentID)
	if err != nil {
		return fmt.Errorf("failed to update agent password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", agentErrors.ErrAgentNotFound, agentID)
	}
	return nil
}

func (r *postgresAgentRepository) Delete(ctx context.Context, agentID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM agents WHERE agent_id = $1`, agentID)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", agentErrors.ErrAgentNotFound, agentID)
	}
	return nil
}

func (r *postgresAgentRepository) ClearTicketAssignments(ctx context.Context, agentID int64) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE tickets SET agent_id = NULL, updated = NOW() WHERE agent_id = $1`, agentID)
	if err != nil {
		return fmt.Errorf("failed to clear ticket assignments: %w", err)
	}
	return nil
}

func (r *postgresAgentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}
