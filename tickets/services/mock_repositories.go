package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	dirModels "github.com/gethelpdesk/helpdesk/directory/models"
	threadModels "github.com/gethelpdesk/helpdesk/threads/models"
	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	userModels "github.com/gethelpdesk/helpdesk/users/models"
)

// MockTicketRepository is a mock implementation of TicketRepository for testing
type MockTicketRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockTicketRepository) FindByID(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

// FindByNumber mocks the FindByNumber method
func (m *MockTicketRepository) FindByNumber(ctx context.Context, number string) (*models.Ticket, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

// NumberExists mocks the NumberExists method
func (m *MockTicketRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// Search mocks the Search method
func (m *MockTicketRepository) Search(ctx context.Context, query *search.CompiledQuery, limit, offset int) ([]models.Ticket, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

// Count mocks the Count method
func (m *MockTicketRepository) Count(ctx context.Context, query *search.CompiledQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

// Update mocks the Update method
func (m *MockTicketRepository) Update(ctx context.Context, ticketID int64, fields map[string]interface{}) error {
	args := m.Called(ctx, ticketID, fields)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockTicketRepository) Delete(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// FormValues mocks the FormValues method
func (m *MockTicketRepository) FormValues(ctx context.Context, ticketID int64) ([]models.TicketFormValue, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TicketFormValue), args.Error(1)
}

// UpdateFormValue mocks the UpdateFormValue method
func (m *MockTicketRepository) UpdateFormValue(ctx context.Context, valueID int64, value string) error {
	args := m.Called(ctx, valueID, value)
	return args.Error(0)
}

// CreateFormEntry mocks the CreateFormEntry method
func (m *MockTicketRepository) CreateFormEntry(ctx context.Context, formID, ticketID int64) (int64, error) {
	args := m.Called(ctx, formID, ticketID)
	return args.Get(0).(int64), args.Error(1)
}

// CreateFormValue mocks the CreateFormValue method
func (m *MockTicketRepository) CreateFormValue(ctx context.Context, entryID, formID, fieldID int64, value string) error {
	args := m.Called(ctx, entryID, formID, fieldID, value)
	return args.Error(0)
}

// WithTransaction mocks the WithTransaction method by running fn
// against the same context, so repository expectations set on the
// mock are visible inside the "transaction".
func (m *MockTicketRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, mock.Anything)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockThreadRepository is a mock implementation of ThreadRepository for testing
type MockThreadRepository struct {
	mock.Mock
}

func (m *MockThreadRepository) Create(ctx context.Context, ticketID int64) (int64, error) {
	args := m.Called(ctx, ticketID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockThreadRepository) FindByTicket(ctx context.Context, ticketID int64) (*threadModels.Thread, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*threadModels.Thread), args.Error(1)
}

func (m *MockThreadRepository) AppendEntry(ctx context.Context, entry *threadModels.ThreadEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockThreadRepository) AppendEvent(ctx context.Context, event *threadModels.ThreadEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockThreadRepository) ListEntries(ctx context.Context, threadID int64) ([]threadModels.ThreadEntry, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]threadModels.ThreadEntry), args.Error(1)
}

func (m *MockThreadRepository) ListEvents(ctx context.Context, threadID int64) ([]threadModels.ThreadEvent, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]threadModels.ThreadEvent), args.Error(1)
}

func (m *MockThreadRepository) AddCollaborator(ctx context.Context, threadID, userID int64, role string) error {
	args := m.Called(ctx, threadID, userID, role)
	return args.Error(0)
}

func (m *MockThreadRepository) ListCollaborators(ctx context.Context, threadID int64) ([]threadModels.ThreadCollaborator, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]threadModels.ThreadCollaborator), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *userModels.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*userModels.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModels.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*userModels.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModels.User), args.Error(1)
}

func (m *MockUserRepository) FindOrCreateByEmail(ctx context.Context, email, name string) (*userModels.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModels.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]userModels.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userModels.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID int64, params *userModels.UpsertUserParams) (*userModels.User, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModels.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTopicRepository is a mock implementation of TopicRepository for testing
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *dirModels.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) FindByID(ctx context.Context, topicID int64) (*dirModels.Topic, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dirModels.Topic), args.Error(1)
}

func (m *MockTopicRepository) List(ctx context.Context) ([]dirModels.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dirModels.Topic), args.Error(1)
}

func (m *MockTopicRepository) Update(ctx context.Context, topic *dirModels.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) Delete(ctx context.Context, topicID int64) error {
	args := m.Called(ctx, topicID)
	return args.Error(0)
}

// MockSLARepository is a mock implementation of SLARepository for testing
type MockSLARepository struct {
	mock.Mock
}

func (m *MockSLARepository) Create(ctx context.Context, sla *dirModels.SLA) error {
	args := m.Called(ctx, sla)
	return args.Error(0)
}

func (m *MockSLARepository) FindByID(ctx context.Context, slaID int64) (*dirModels.SLA, error) {
	args := m.Called(ctx, slaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dirModels.SLA), args.Error(1)
}

func (m *MockSLARepository) List(ctx context.Context) ([]dirModels.SLA, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dirModels.SLA), args.Error(1)
}

func (m *MockSLARepository) Update(ctx context.Context, sla *dirModels.SLA) error {
	args := m.Called(ctx, sla)
	return args.Error(0)
}

func (m *MockSLARepository) Delete(ctx context.Context, slaID int64) error {
	args := m.Called(ctx, slaID)
	return args.Error(0)
}
