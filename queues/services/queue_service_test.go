package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	queueErrors "github.com/gethelpdesk/helpdesk/queues/errors"
	"github.com/gethelpdesk/helpdesk/queues/models"
	ticketModels "github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	ticketServices "github.com/gethelpdesk/helpdesk/tickets/services"
)

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Create(ctx context.Context, queue *models.Queue) error {
	args := m.Called(ctx, queue)
	return args.Error(0)
}

func (m *MockQueueRepository) FindByID(ctx context.Context, queueID int64) (*models.Queue, error) {
	args := m.Called(ctx, queueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Queue), args.Error(1)
}

func (m *MockQueueRepository) ListVisible(ctx context.Context, agentID int64) ([]models.Queue, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Queue), args.Error(1)
}

func (m *MockQueueRepository) Update(ctx context.Context, queue *models.Queue) error {
	args := m.Called(ctx, queue)
	return args.Error(0)
}

func (m *MockQueueRepository) Delete(ctx context.Context, queueID int64) error {
	args := m.Called(ctx, queueID)
	return args.Error(0)
}

type MockTicketSearch struct {
	mock.Mock
}

func (m *MockTicketSearch) Create(ctx context.Context, params *ticketModels.CreateTicketParams) (*ticketModels.Ticket, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketModels.Ticket), args.Error(1)
}

func (m *MockTicketSearch) Get(ctx context.Context, ticketID int64) (*ticketModels.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketModels.Ticket), args.Error(1)
}

func (m *MockTicketSearch) GetByNumber(ctx context.Context, number string) (*ticketModels.Ticket, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketModels.Ticket), args.Error(1)
}

func (m *MockTicketSearch) Search(ctx context.Context, req *ticketModels.SearchRequest, scope search.Scope) (*ticketModels.SearchResult, error) {
	args := m.Called(ctx, req, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketModels.SearchResult), args.Error(1)
}

func (m *MockTicketSearch) UpdateWithAudit(ctx context.Context, ticketID int64, params *ticketModels.UpdateTicketParams, actor ticketServices.Actor) (*ticketModels.UpdateResult, error) {
	args := m.Called(ctx, ticketID, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketModels.UpdateResult), args.Error(1)
}

func (m *MockTicketSearch) Delete(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func TestCreateQueue_RejectsUnsupportedFilters(t *testing.T) {
	repo := new(MockQueueRepository)
	svc := NewQueueService(repo, new(MockTicketSearch))

	_, err := svc.Create(context.Background(), 1, &models.UpsertQueueParams{
		Title: "bad",
		Filters: []search.Filter{
			{Field: "created", Operator: search.OpNotBetween, Value: []interface{}{1, 2}},
		},
	})

	assert.ErrorIs(t, err, search.ErrNotImplemented)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQueue_PersonalOwnership(t *testing.T) {
	repo := new(MockQueueRepository)
	svc := NewQueueService(repo, new(MockTicketSearch))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Queue) bool {
		return q.AgentID != nil && *q.AgentID == int64(7) && q.Title == "My open tickets"
	})).Return(nil)

	queue, err := svc.Create(context.Background(), 7, &models.UpsertQueueParams{
		Title:   "My open tickets",
		Filters: []search.Filter{{Field: "assigned", Operator: search.OpEq, Value: "me"}},
		Sorts:   []string{"-created"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"field":"assigned","operator":"eq","value":"me"}]`, queue.Filters)
	repo.AssertExpectations(t)
}

func TestExecuteQueue_ReplaysStoredSearch(t *testing.T) {
	repo := new(MockQueueRepository)
	tickets := new(MockTicketSearch)
	svc := NewQueueService(repo, tickets)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(3)).Return(&models.Queue{
		QueueID: 3,
		Title:   "Overdue",
		Filters: `[{"field":"overdue","operator":"eq","value":1}]`,
		Sorts:   `["-created"]`,
	}, nil)
	tickets.On("Search", ctx, mock.MatchedBy(func(req *ticketModels.SearchRequest) bool {
		return len(req.Filters) == 1 && req.Filters[0].Field == "overdue" &&
			len(req.Sorts) == 1 && req.Sorts[0] == "-created" && req.Page == 2
	}), search.Scope{AgentID: 9}).Return(&ticketModels.SearchResult{Total: 4, Page: 2, Size: 25}, nil)

	result, err := svc.Execute(ctx, 3, 9, 2, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)
	tickets.AssertExpectations(t)
}

func TestExecuteQueue_CorruptFilters(t *testing.T) {
	repo := new(MockQueueRepository)
	svc := NewQueueService(repo, new(MockTicketSearch))
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(3)).Return(&models.Queue{
		QueueID: 3, Filters: "{not json", Sorts: "[]",
	}, nil)

	_, err := svc.Execute(ctx, 3, 9, 1, 25)
	assert.ErrorIs(t, err, queueErrors.ErrInvalidQueueData)
}

func TestUpdateQueue_OwnershipEnforced(t *testing.T) {
	repo := new(MockQueueRepository)
	svc := NewQueueService(repo, new(MockTicketSearch))
	ctx := context.Background()

	owner := int64(7)
	repo.On("FindByID", ctx, int64(3)).Return(&models.Queue{QueueID: 3, AgentID: &owner}, nil)

	_, err := svc.Update(ctx, 3, 8, false, &models.UpsertQueueParams{Title: "renamed"})
	assert.ErrorIs(t, err, queueErrors.ErrNotQueueOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
