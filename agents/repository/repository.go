package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/agents/models"
)

// AgentRepository defines the interface for agent database operations.
type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	FindByID(ctx context.Context, agentID int64) (*models.Agent, error)
	FindByEmail(ctx context.Context, email string) (*models.Agent, error)
	List(ctx context.Context, limit, offset int) ([]models.Agent, error)
	Update(ctx context.Context, agent *models.Agent) error
	UpdatePassword(ctx context.Context, agentID int64, passwordHash string) error

	// Delete removes the agent row.
	Delete(ctx context.Context, agentID int64) error

	// ClearTicketAssignments nulls tickets.agent_id for a departing
	// agent so their tickets fall back to unassigned.
	ClearTicketAssignments(ctx context.Context, agentID int64) error

	// WithTransaction runs fn inside a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
