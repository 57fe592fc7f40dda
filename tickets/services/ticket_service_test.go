package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dirModels "github.com/gethelpdesk/helpdesk/directory/models"
	"github.com/gethelpdesk/helpdesk/internal/platform/email"
	threadModels "github.com/gethelpdesk/helpdesk/threads/models"
	"github.com/gethelpdesk/helpdesk/tickets/audit"
	ticketErrors "github.com/gethelpdesk/helpdesk/tickets/errors"
	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	userModels "github.com/gethelpdesk/helpdesk/users/models"
)

type serviceMocks struct {
	repo    *MockTicketRepository
	threads *MockThreadRepository
	users   *MockUserRepository
	topics  *MockTopicRepository
	slas    *MockSLARepository
}

func newTestService(engine *audit.Engine) (TicketService, *serviceMocks) {
	m := &serviceMocks{
		repo:    new(MockTicketRepository),
		threads: new(MockThreadRepository),
		users:   new(MockUserRepository),
		topics:  new(MockTopicRepository),
		slas:    new(MockSLARepository),
	}
	if engine == nil {
		engine = audit.NewEngine(nil)
	}
	svc := NewTicketService(m.repo, m.threads, m.users, m.topics, m.slas,
		engine, email.NoopSender{}, "support@example.com")
	return svc, m
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateTicket_AppliesTopicDefaults(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	topic := &dirModels.Topic{
		TopicID:    4,
		Topic:      "Billing",
		StatusID:   int64Ptr(1),
		DeptID:     int64Ptr(2),
		PriorityID: int64Ptr(3),
	}
	m.topics.On("FindByID", ctx, int64(4)).Return(topic, nil)
	m.repo.On("WithTransaction", ctx, mock.Anything).Return(nil)
	m.users.On("FindOrCreateByEmail", ctx, "sam@example.com", "Sam").
		Return(&userModels.User{UserID: 12, Email: "sam@example.com"}, nil)
	m.repo.On("NumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
	m.repo.On("Create", ctx, mock.AnythingOfType("*models.Ticket")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Ticket).TicketID = 99
		}).Return(nil)
	m.threads.On("Create", ctx, int64(99)).Return(int64(55), nil)

	ticket, err := svc.Create(ctx, &models.CreateTicketParams{
		Email:   "sam@example.com",
		Name:    "Sam",
		TopicID: 4,
		Title:   "Printer on fire",
	})
	require.NoError(t, err)

	assert.Len(t, ticket.Number, 8)
	assert.Equal(t, int64(12), *ticket.UserID)
	assert.Equal(t, int64(1), *ticket.StatusID)
	assert.Equal(t, int64(2), *ticket.DeptID)
	assert.Equal(t, int64(3), *ticket.PriorityID)
	assert.Equal(t, int64(4), *ticket.TopicID)
	assert.Equal(t, "Printer on fire", *ticket.Title)
	m.repo.AssertExpectations(t)
	m.threads.AssertExpectations(t)
}

func TestCreateTicket_UnknownTopic(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	m.topics.On("FindByID", ctx, int64(77)).Return(nil, assert.AnError)

	_, err := svc.Create(ctx, &models.CreateTicketParams{
		Email: "sam@example.com", TopicID: 77, Title: "x",
	})
	assert.ErrorIs(t, err, ticketErrors.ErrTopicNotFound)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTicket_NumberSpaceExhausted(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	m.topics.On("FindByID", ctx, int64(1)).Return(&dirModels.Topic{TopicID: 1}, nil)
	m.repo.On("WithTransaction", ctx, mock.Anything).Return(nil)
	m.users.On("FindOrCreateByEmail", ctx, "a@b.c", "").
		Return(&userModels.User{UserID: 1}, nil)
	// Every candidate number collides.
	m.repo.On("NumberExists", ctx, mock.AnythingOfType("string")).Return(true, nil)

	_, err := svc.Create(ctx, &models.CreateTicketParams{Email: "a@b.c", TopicID: 1, Title: "x"})
	assert.ErrorIs(t, err, ticketErrors.ErrNumberExhausted)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTicket_RequiresEmailAndTitle(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), &models.CreateTicketParams{Email: "a@b.c"})
	assert.ErrorIs(t, err, ticketErrors.ErrInvalidTicketData)

	_, err = svc.Create(context.Background(), &models.CreateTicketParams{Title: "x"})
	assert.ErrorIs(t, err, ticketErrors.ErrInvalidTicketData)
}

func TestSearch_PropagatesUnsupportedOperator(t *testing.T) {
	svc, m := newTestService(nil)

	_, err := svc.Search(context.Background(), &models.SearchRequest{
		Filters: []search.Filter{
			{Field: "created", Operator: search.OpNotBetween, Value: []interface{}{1, 2}},
		},
	}, search.Scope{AgentID: 1})

	assert.ErrorIs(t, err, search.ErrNotImplemented)
	m.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_PaginationDefaults(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	m.repo.On("Search", ctx, mock.Anything, 25, 0).
		Return([]models.Ticket{{TicketID: 1}}, nil)
	m.repo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	result, err := svc.Search(ctx, &models.SearchRequest{}, search.Scope{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 25, result.Size)
	assert.Equal(t, int64(1), result.Total)
	m.repo.AssertExpectations(t)
}

func TestSearch_PageOffset(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	m.repo.On("Search", ctx, mock.Anything, 10, 20).Return([]models.Ticket{}, nil)
	m.repo.On("Count", ctx, mock.Anything).Return(int64(0), nil)

	result, err := svc.Search(ctx, &models.SearchRequest{Page: 3, Size: 10}, search.Scope{AgentID: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	m.repo.AssertExpectations(t)
}

func TestUpdateWithAudit_RecordsEventAndJournal(t *testing.T) {
	engine := audit.NewEngine(map[string]audit.Lookup{
		"status_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			names := map[int64]string{1: "Open", 2: "Resolved"}
			name, ok := names[id]
			return name, ok, nil
		}),
	})
	svc, m := newTestService(engine)
	ctx := context.Background()

	current := &models.Ticket{TicketID: 9, Number: "00112233", StatusID: int64Ptr(1)}
	updated := &models.Ticket{TicketID: 9, Number: "00112233", StatusID: int64Ptr(2)}

	m.repo.On("WithTransaction", ctx, mock.Anything).Return(nil)
	m.repo.On("FindByID", ctx, int64(9)).Return(current, nil).Once()
	m.threads.On("FindByTicket", ctx, int64(9)).Return(&threadModels.Thread{ThreadID: 5}, nil)
	m.repo.On("Update", ctx, int64(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, ok := fields["status_id"]
		return ok && len(fields) == 1
	})).Return(nil)
	m.threads.On("AppendEvent", ctx, mock.MatchedBy(func(ev *threadModels.ThreadEvent) bool {
		return ev.ThreadID == 5 && ev.Type == string(audit.ChangeModified) && ev.Owner == "Jane Doe"
	})).Return(nil)
	m.threads.On("AppendEntry", ctx, mock.MatchedBy(func(entry *threadModels.ThreadEntry) bool {
		return entry.ThreadID == 5 && entry.Type == threadModels.EntryTypeNote &&
			*entry.Subject == "Resolution" && entry.Body == "Replaced the toner."
	})).Return(nil)
	m.repo.On("FindByID", ctx, int64(9)).Return(updated, nil).Once()

	result, err := svc.UpdateWithAudit(ctx, 9, &models.UpdateTicketParams{
		Fields: map[string]interface{}{
			"status_id": 2,
			"subject":   "Resolution",
			"body":      "Replaced the toner.",
		},
	}, Actor{AgentID: 3, Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.EventCount)
	assert.True(t, result.Journal)
	assert.Equal(t, int64(2), *result.Ticket.StatusID)
	m.repo.AssertExpectations(t)
	m.threads.AssertExpectations(t)
}

func TestUpdateWithAudit_NoopUpdateWritesNothing(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	ticket := &models.Ticket{TicketID: 9, StatusID: int64Ptr(2)}
	m.repo.On("WithTransaction", ctx, mock.Anything).Return(nil)
	m.repo.On("FindByID", ctx, int64(9)).Return(ticket, nil)
	m.threads.On("FindByTicket", ctx, int64(9)).Return(&threadModels.Thread{ThreadID: 5}, nil)

	result, err := svc.UpdateWithAudit(ctx, 9, &models.UpdateTicketParams{
		Fields: map[string]interface{}{"status_id": 2},
	}, Actor{AgentID: 3, Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.EventCount)
	assert.False(t, result.Journal)
	m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	m.threads.AssertNotCalled(t, "AppendEvent", mock.Anything, mock.Anything)
	m.threads.AssertNotCalled(t, "AppendEntry", mock.Anything, mock.Anything)
}

func TestUpdateWithAudit_FormValueChange(t *testing.T) {
	svc, m := newTestService(nil)
	ctx := context.Background()

	ticket := &models.Ticket{TicketID: 9}
	oldVal := "building A"
	m.repo.On("WithTransaction", ctx, mock.Anything).Return(nil)
	m.repo.On("FindByID", ctx, int64(9)).Return(ticket, nil)
	m.threads.On("FindByTicket", ctx, int64(9)).Return(&threadModels.Thread{ThreadID: 5}, nil)
	m.repo.On("FormValues", ctx, int64(9)).Return([]models.TicketFormValue{
		{ValueID: 31, FieldID: int64Ptr(7), Label: "Location", Value: &oldVal},
	}, nil)
	m.repo.On("UpdateFormValue", ctx, int64(31), "building B").Return(nil)
	m.threads.On("AppendEvent", ctx, mock.MatchedBy(func(ev *threadModels.ThreadEvent) bool {
		return ev.Type == string(audit.ChangeModified)
	})).Return(nil)

	result, err := svc.UpdateWithAudit(ctx, 9, &models.UpdateTicketParams{
		FormValues: map[int64]string{7: "building B"},
	}, Actor{AgentID: 3, Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.EventCount)
	m.repo.AssertExpectations(t)
	m.threads.AssertExpectations(t)
}
