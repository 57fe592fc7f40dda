package services

import (
	"context"
	"encoding/json"
	"fmt"

	queueErrors "github.com/gethelpdesk/helpdesk/queues/errors"
	"github.com/gethelpdesk/helpdesk/queues/models"
	"github.com/gethelpdesk/helpdesk/queues/repository"
	ticketModels "github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	ticketServices "github.com/gethelpdesk/helpdesk/tickets/services"
)

// QueueService defines the interface for saved-search operations.
type QueueService interface {
	// Create validates the saved filters by compiling them, then
	// stores the queue.
	Create(ctx context.Context, agentID int64, params *models.UpsertQueueParams) (*models.Queue, error)

	Get(ctx context.Context, queueID int64) (*models.Queue, error)
	List(ctx context.Context, agentID int64) ([]models.Queue, error)
	Update(ctx context.Context, queueID, agentID int64, admin bool, params *models.UpsertQueueParams) (*models.Queue, error)
	Delete(ctx context.Context, queueID, agentID int64, admin bool) error

	// Execute replays the queue's stored filters and sorts through the
	// ticket search as the executing agent.
	Execute(ctx context.Context, queueID, agentID int64, page, size int) (*ticketModels.SearchResult, error)
}

type queueService struct {
	repo    repository.QueueRepository
	tickets ticketServices.TicketService
}

// NewQueueService creates a new instance of the queue service.
func NewQueueService(repo repository.QueueRepository, tickets ticketServices.TicketService) QueueService {
	return &queueService{repo: repo, tickets: tickets}
}

func (s *queueService) Create(ctx context.Context, agentID int64, params *models.UpsertQueueParams) (*models.Queue, error) {
	queue, err := buildQueue(agentID, params)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, queue); err != nil {
		return nil, err
	}
	return queue, nil
}

func (s *queueService) Get(ctx context.Context, queueID int64) (*models.Queue, error) {
	return s.repo.FindByID(ctx, queueID)
}

func (s *queueService) List(ctx context.Context, agentID int64) ([]models.Queue, error) {
	return s.repo.ListVisible(ctx, agentID)
}

func (s *queueService) Update(ctx context.Context, queueID, agentID int64, admin bool, params *models.UpsertQueueParams) (*models.Queue, error) {
	existing, err := s.repo.FindByID(ctx, queueID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(existing, agentID, admin); err != nil {
		return nil, err
	}

	queue, err := buildQueue(agentID, params)
	if err != nil {
		return nil, err
	}
	queue.QueueID = queueID
	queue.AgentID = existing.AgentID
	if err := s.repo.Update(ctx, queue); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, queueID)
}

func (s *queueService) Delete(ctx context.Context, queueID, agentID int64, admin bool) error {
	existing, err := s.repo.FindByID(ctx, queueID)
	if err != nil {
		return err
	}
	if err := checkOwner(existing, agentID, admin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, queueID)
}

func (s *queueService) Execute(ctx context.Context, queueID, agentID int64, page, size int) (*ticketModels.SearchResult, error) {
	queue, err := s.repo.FindByID(ctx, queueID)
	if err != nil {
		return nil, err
	}

	var filters []search.Filter
	if err := json.Unmarshal([]byte(queue.Filters), &filters); err != nil {
		return nil, fmt.Errorf("%w: stored filters are corrupt: %v", queueErrors.ErrInvalidQueueData, err)
	}
	var sorts []string
	if err := json.Unmarshal([]byte(queue.Sorts), &sorts); err != nil {
		return nil, fmt.Errorf("%w: stored sorts are corrupt: %v", queueErrors.ErrInvalidQueueData, err)
	}

	req := &ticketModels.SearchRequest{Filters: filters, Sorts: sorts, Page: page, Size: size}
	return s.tickets.Search(ctx, req, search.Scope{AgentID: agentID})
}

// buildQueue compiles the filters once to reject definitions that
// could never execute, then serializes them for storage.
func buildQueue(agentID int64, params *models.UpsertQueueParams) (*models.Queue, error) {
	if params == nil || params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", queueErrors.ErrInvalidQueueData)
	}

	if _, err := search.Compile(params.Filters, params.Sorts, search.Scope{AgentID: agentID}); err != nil {
		return nil, err
	}

	filters, err := json.Marshal(params.Filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", queueErrors.ErrInvalidQueueData, err)
	}
	sorts, err := json.Marshal(params.Sorts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", queueErrors.ErrInvalidQueueData, err)
	}
	if params.Filters == nil {
		filters = []byte("[]")
	}
	if params.Sorts == nil {
		sorts = []byte("[]")
	}

	queue := &models.Queue{Title: params.Title, Filters: string(filters), Sorts: string(sorts)}
	if !params.Shared {
		queue.AgentID = &agentID
	}
	return queue, nil
}

// checkOwner allows the owning agent, or an admin for shared and
// foreign queues.
func checkOwner(queue *models.Queue, agentID int64, admin bool) error {
	if admin {
		return nil
	}
	if queue.AgentID != nil && *queue.AgentID == agentID {
		return nil
	}
	return fmt.Errorf("%w: id=%d", queueErrors.ErrNotQueueOwner, queue.QueueID)
}
