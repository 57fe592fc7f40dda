package services

import (
	"context"
	"fmt"

	dirErrors "github.com/gethelpdesk/helpdesk/directory/errors"
	"github.com/gethelpdesk/helpdesk/directory/models"
	"github.com/gethelpdesk/helpdesk/directory/repository"
)

// DirectoryService bundles the small lookup-set operations behind one
// interface; each entity is a thin validate-then-delegate pass.
type DirectoryService interface {
	CreateTopic(ctx context.Context, topic *models.Topic) error
	GetTopic(ctx context.Context, topicID int64) (*models.Topic, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	UpdateTopic(ctx context.Context, topic *models.Topic) error
	DeleteTopic(ctx context.Context, topicID int64) error

	CreateRole(ctx context.Context, role *models.Role) error
	GetRole(ctx context.Context, roleID int64) (*models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role *models.Role) error
	DeleteRole(ctx context.Context, roleID int64) error

	CreateSLA(ctx context.Context, sla *models.SLA) error
	GetSLA(ctx context.Context, slaID int64) (*models.SLA, error)
	ListSLAs(ctx context.Context) ([]models.SLA, error)
	UpdateSLA(ctx context.Context, sla *models.SLA) error
	DeleteSLA(ctx context.Context, slaID int64) error

	CreateStatus(ctx context.Context, status *models.TicketStatus) error
	GetStatus(ctx context.Context, statusID int64) (*models.TicketStatus, error)
	ListStatuses(ctx context.Context) ([]models.TicketStatus, error)
	UpdateStatus(ctx context.Context, status *models.TicketStatus) error
	DeleteStatus(ctx context.Context, statusID int64) error

	ListPriorities(ctx context.Context) ([]models.TicketPriority, error)

	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, categoryID int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}

type directoryService struct {
	topics     repository.TopicRepository
	roles      repository.RoleRepository
	slas       repository.SLARepository
	statuses   repository.StatusRepository
	priorities repository.PriorityRepository
	categories repository.CategoryRepository
}

// NewDirectoryService creates a new instance of the directory service.
func NewDirectoryService(
	topics repository.TopicRepository,
	roles repository.RoleRepository,
	slas repository.SLARepository,
	statuses repository.StatusRepository,
	priorities repository.PriorityRepository,
	categories repository.CategoryRepository,
) DirectoryService {
	return &directoryService{
		topics:     topics,
		roles:      roles,
		slas:       slas,
		statuses:   statuses,
		priorities: priorities,
		categories: categories,
	}
}

func required(what, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", dirErrors.ErrInvalidData, what)
	}
	return nil
}

func (s *directoryService) CreateTopic(ctx context.Context, topic *models.Topic) error {
	if err := required("topic", topic.Topic); err != nil {
		return err
	}
	return s.topics.Create(ctx, topic)
}

func (s *directoryService) GetTopic(ctx context.Context, topicID int64) (*models.Topic, error) {
	return s.topics.FindByID(ctx, topicID)
}

func (s *directoryService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

func (s *directoryService) UpdateTopic(ctx context.Context, topic *models.Topic) error {
	if err := required("topic", topic.Topic); err != nil {
		return err
	}
	return s.topics.Update(ctx, topic)
}

func (s *directoryService) DeleteTopic(ctx context.Context, topicID int64) error {
	return s.topics.Delete(ctx, topicID)
}

func (s *directoryService) CreateRole(ctx context.Context, role *models.Role) error {
	if err := required("name", role.Name); err != nil {
		return err
	}
	return s.roles.Create(ctx, role)
}

func (s *directoryService) GetRole(ctx context.Context, roleID int64) (*models.Role, error) {
	return s.roles.FindByID(ctx, roleID)
}

func (s *directoryService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.roles.List(ctx)
}

func (s *directoryService) UpdateRole(ctx context.Context, role *models.Role) error {
	if err := required("name", role.Name); err != nil {
		return err
	}
	return s.roles.Update(ctx, role)
}

func (s *directoryService) DeleteRole(ctx context.Context, roleID int64) error {
	return s.roles.Delete(ctx, roleID)
}

func (s *directoryService) CreateSLA(ctx context.Context, sla *models.SLA) error {
	if err := required("name", sla.Name); err != nil {
		return err
	}
	if sla.GracePeriod < 0 {
		return fmt.Errorf("%w: grace_period must be >= 0", dirErrors.ErrInvalidData)
	}
	return s.slas.Create(ctx, sla)
}

func (s *directoryService) GetSLA(ctx context.Context, slaID int64) (*models.SLA, error) {
	return s.slas.FindByID(ctx, slaID)
}

func (s *directoryService) ListSLAs(ctx context.Context) ([]models.SLA, error) {
	return s.slas.List(ctx)
}

func (s *directoryService) UpdateSLA(ctx context.Context, sla *models.SLA) error {
	if err := required("name", sla.Name); err != nil {
		return err
	}
	return s.slas.Update(ctx, sla)
}

func (s *directoryService) DeleteSLA(ctx context.Context, slaID int64) error {
	return s.slas.Delete(ctx, slaID)
}

func (s *directoryService) CreateStatus(ctx context.Context, status *models.TicketStatus) error {
	if err := required("name", status.Name); err != nil {
		return err
	}
	if err := required("state", status.State); err != nil {
		return err
	}
	return s.statuses.Create(ctx, status)
}

func (s *directoryService) GetStatus(ctx context.Context, statusID int64) (*models.TicketStatus, error) {
	return s.statuses.FindByID(ctx, statusID)
}

func (s *directoryService) ListStatuses(ctx context.Context) ([]models.TicketStatus, error) {
	return s.statuses.List(ctx)
}

func (s *directoryService) UpdateStatus(ctx context.Context, status *models.TicketStatus) error {
	if err := required("name", status.Name); err != nil {
		return err
	}
	return s.statuses.Update(ctx, status)
}

func (s *directoryService) DeleteStatus(ctx context.Context, statusID int64) error {
	return s.statuses.Delete(ctx, statusID)
}

func (s *directoryService) ListPriorities(ctx context.Context) ([]models.TicketPriority, error) {
	return s.priorities.List(ctx)
}

func (s *directoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := required("name", category.Name); err != nil {
		return err
	}
	return s.categories.Create(ctx, category)
}

func (s *directoryService) GetCategory(ctx context.Context, categoryID int64) (*models.Category, error) {
	return s.categories.FindByID(ctx, categoryID)
}

func (s *directoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *directoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	if err := required("name", category.Name); err != nil {
		return err
	}
	return s.categories.Update(ctx, category)
}

func (s *directoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.categories.Delete(ctx, categoryID)
}
