package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/directory/models"
)

// TopicRepository defines the interface for help-topic database operations.
type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	FindByID(ctx context.Context, topicID int64) (*models.Topic, error)
	List(ctx context.Context) ([]models.Topic, error)
	Update(ctx context.Context, topic *models.Topic) error
	Delete(ctx context.Context, topicID int64) error
}

// RoleRepository defines the interface for role database operations.
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByID(ctx context.Context, roleID int64) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, roleID int64) error
}

// SLARepository defines the interface for SLA database operations.
type SLARepository interface {
	Create(ctx context.Context, sla *models.SLA) error
	FindByID(ctx context.Context, slaID int64) (*models.SLA, error)
	List(ctx context.Context) ([]models.SLA, error)
	Update(ctx context.Context, sla *models.SLA) error
	Delete(ctx context.Context, slaID int64) error
}

// StatusRepository defines the interface for ticket-status operations.
type StatusRepository interface {
	Create(ctx context.Context, status *models.TicketStatus) error
	FindByID(ctx context.Context, statusID int64) (*models.TicketStatus, error)
	List(ctx context.Context) ([]models.TicketStatus, error)
	Update(ctx context.Context, status *models.TicketStatus) error
	Delete(ctx context.Context, statusID int64) error
}

// PriorityRepository defines the interface for ticket-priority reads.
// Priorities are seeded by migration and read-only at runtime.
type PriorityRepository interface {
	FindByID(ctx context.Context, priorityID int64) (*models.TicketPriority, error)
	List(ctx context.Context) ([]models.TicketPriority, error)
}

// CategoryRepository defines the interface for category operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, categoryID int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, categoryID int64) error
}
