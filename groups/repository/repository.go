package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/groups/models"
)

// GroupRepository defines the interface for group database operations.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, groupID int64) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, groupID int64) error

	// ReplaceMembers swaps the group's member list for the given agents.
	ReplaceMembers(ctx context.Context, groupID int64, agentIDs []int64) error
	ListMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error)

	// WithTransaction runs fn inside a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
