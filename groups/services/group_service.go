package services

import (
	"context"
	"fmt"

	groupErrors "github.com/gethelpdesk/helpdesk/groups/errors"
	"github.com/gethelpdesk/helpdesk/groups/models"
	"github.com/gethelpdesk/helpdesk/groups/repository"
)

// GroupService defines the interface for group operations.
type GroupService interface {
	Create(ctx context.Context, params *models.UpsertGroupParams) (*models.Group, error)
	Get(ctx context.Context, groupID int64) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, groupID int64, params *models.UpsertGroupParams) (*models.Group, error)
	Delete(ctx context.Context, groupID int64) error
}

type groupService struct {
	repo repository.GroupRepository
}

// NewGroupService creates a new instance of the group service.
func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, params *models.UpsertGroupParams) (*models.Group, error) {
	if params == nil || params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", groupErrors.ErrInvalidGroupData)
	}

	group := &models.Group{LeadID: params.LeadID, Name: params.Name, Notes: params.Notes}
	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, group); err != nil {
			return err
		}
		return s.repo.ReplaceMembers(txCtx, group.GroupID, params.AgentIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, group.GroupID)
}

func (s *groupService) Get(ctx context.Context, groupID int64) (*models.Group, error) {
	return s.repo.FindByID(ctx, groupID)
}

func (s *groupService) List(ctx context.Context) ([]models.Group, error) {
	return s.repo.List(ctx)
}

func (s *groupService) Update(ctx context.Context, groupID int64, params *models.UpsertGroupParams) (*models.Group, error) {
	if params == nil || params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", groupErrors.ErrInvalidGroupData)
	}

	group := &models.Group{GroupID: groupID, LeadID: params.LeadID, Name: params.Name, Notes: params.Notes}
	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, group); err != nil {
			return err
		}
		return s.repo.ReplaceMembers(txCtx, groupID, params.AgentIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, groupID)
}

func (s *groupService) Delete(ctx context.Context, groupID int64) error {
	return s.repo.Delete(ctx, groupID)
}
