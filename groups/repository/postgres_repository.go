package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	groupErrors "github.com/gethelpdesk/helpdesk/groups/errors"
	"github.com/gethelpdesk/helpdesk/groups/models"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
)

type postgresGroupRepository struct {
	client *postgres.Client
}

// NewPostgresGroupRepository creates a new PostgreSQL group repository.
func NewPostgresGroupRepository(client *postgres.Client) GroupRepository {
	return &postgresGroupRepository{client: client}
}

func (r *postgresGroupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (lead_id, name, notes) VALUES ($1, $2, $3)
		RETURNING group_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, group.LeadID, group.Name, group.Notes).
		Scan(&group.GroupID, &group.Updated, &group.Created)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (r *postgresGroupRepository) FindByID(ctx context.Context, groupID int64) (*models.Group, error) {
	var group models.Group
	query := `SELECT group_id, lead_id, name, notes, updated, created FROM groups WHERE group_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &group, query, groupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", groupErrors.ErrGroupNotFound, groupID)
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	members, err := r.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members
	return &group, nil
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	query := `SELECT group_id, lead_id, name, notes, updated, created FROM groups ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &groups, query); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (r *postgresGroupRepository) Update(ctx context.Context, group *models.Group) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE groups SET lead_id = $1, name = $2, notes = $3, updated = NOW() WHERE group_id = $4`,
		group.LeadID, group.Name, group.Notes, group.GroupID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", groupErrors.ErrGroupNotFound, group.GroupID)
	}
	return nil
}

func (r *postgresGroupRepository) Delete(ctx context.Context, groupID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM groups WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", groupErrors.ErrGroupNotFound, groupID)
	}
	return nil
}

func (r *postgresGroupRepository) ReplaceMembers(ctx context.Context, groupID int64, agentIDs []int64) error {
	exec := r.client.Executor(ctx)
	if _, err := exec.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to clear group members: %w", err)
	}
	for _, agentID := range agentIDs {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO group_members (group_id, agent_id) VALUES ($1, $2)`, groupID, agentID); err != nil {
			return fmt.Errorf("failed to add group member: %w", err)
		}
	}
	return nil
}

func (r *postgresGroupRepository) ListMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	members := []models.GroupMember{}
	query := `SELECT member_id, group_id, agent_id FROM group_members WHERE group_id = $1 ORDER BY member_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &members, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	return members, nil
}

func (r *postgresGroupRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}
