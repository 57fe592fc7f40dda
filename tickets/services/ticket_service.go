package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dirRepository "github.com/gethelpdesk/helpdesk/directory/repository"
	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
	"github.com/gethelpdesk/helpdesk/internal/pkg/refnum"
	"github.com/gethelpdesk/helpdesk/internal/platform/email"
	threadModels "github.com/gethelpdesk/helpdesk/threads/models"
	threadRepository "github.com/gethelpdesk/helpdesk/threads/repository"
	"github.com/gethelpdesk/helpdesk/tickets/audit"
	ticketErrors "github.com/gethelpdesk/helpdesk/tickets/errors"
	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/repository"
	"github.com/gethelpdesk/helpdesk/tickets/search"
	userRepository "github.com/gethelpdesk/helpdesk/users/repository"
)

// Actor identifies who performs a ticket update, for the audit trail.
type Actor struct {
	AgentID int64
	Name    string
}

// TicketService defines the interface for ticket operations.
type TicketService interface {
	// Create opens a ticket from a submitter request, seeding defaults
	// from the help topic, in one transaction.
	Create(ctx context.Context, params *models.CreateTicketParams) (*models.Ticket, error)

	Get(ctx context.Context, ticketID int64) (*models.Ticket, error)
	GetByNumber(ctx context.Context, number string) (*models.Ticket, error)

	// Search compiles and runs an advanced search with pagination.
	Search(ctx context.Context, req *models.SearchRequest, scope search.Scope) (*models.SearchResult, error)

	// UpdateWithAudit diffs the update against the stored row, applies
	// it, and records change events and the optional journal entry,
	// all in one transaction.
	UpdateWithAudit(ctx context.Context, ticketID int64, params *models.UpdateTicketParams, actor Actor) (*models.UpdateResult, error)

	Delete(ctx context.Context, ticketID int64) error
}

type ticketService struct {
	repo    repository.TicketRepository
	threads threadRepository.ThreadRepository
	users   userRepository.UserRepository
	topics  dirRepository.TopicRepository
	slas    dirRepository.SLARepository
	engine  *audit.Engine
	sender  email.Sender
	from    string
}

// NewTicketService creates a new instance of the ticket service.
func NewTicketService(
	repo repository.TicketRepository,
	threads threadRepository.ThreadRepository,
	users userRepository.UserRepository,
	topics dirRepository.TopicRepository,
	slas dirRepository.SLARepository,
	engine *audit.Engine,
	sender email.Sender,
	fromAddress string,
) TicketService {
	return &ticketService{
		repo:    repo,
		threads: threads,
		users:   users,
		topics:  topics,
		slas:    slas,
		engine:  engine,
		sender:  sender,
		from:    fromAddress,
	}
}

func (s *ticketService) Create(ctx context.Context, params *models.CreateTicketParams) (*models.Ticket, error) {
	if params == nil || params.Email == "" || params.Title == "" {
		return nil, fmt.Errorf("%w: email and title are required", ticketErrors.ErrInvalidTicketData)
	}

	topic, err := s.topics.FindByID(ctx, params.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%w: topic_id=%d", ticketErrors.ErrTopicNotFound, params.TopicID)
	}

	var ticket *models.Ticket
	err = s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.users.FindOrCreateByEmail(txCtx, params.Email, params.Name)
		if err != nil {
			return fmt.Errorf("failed to resolve submitter: %w", err)
		}

		number, err := refnum.Generate(txCtx, s.repo.NumberExists)
		if err != nil {
			return fmt.Errorf("%w: %v", ticketErrors.ErrNumberExhausted, err)
		}

		ticket = &models.Ticket{
			Number:     number,
			UserID:     &user.UserID,
			StatusID:   topic.StatusID,
			DeptID:     topic.DeptID,
			SLAID:      topic.SLAID,
			AgentID:    topic.AgentID,
			GroupID:    topic.GroupID,
			PriorityID: topic.PriorityID,
			TopicID:    &topic.TopicID,
			DueDate:    params.DueDate,
		}
		ticket.Title = &params.Title
		if params.Description != "" {
			ticket.Description = &params.Description
		}

		if topic.SLAID != nil {
			if due, err := s.estimateDueDate(txCtx, *topic.SLAID); err == nil {
				ticket.EstDueDate = &due
			} else {
				log.WarnWithContext(txCtx, "skipping est due date: %v", err)
			}
		}

		if err := s.repo.Create(txCtx, ticket); err != nil {
			return err
		}

		if _, err := s.threads.Create(txCtx, ticket.TicketID); err != nil {
			return err
		}

		if topic.FormID != nil && len(params.FormValues) > 0 {
			entryID, err := s.repo.CreateFormEntry(txCtx, *topic.FormID, ticket.TicketID)
			if err != nil {
				return err
			}
			for fieldID, value := range params.FormValues {
				if err := s.repo.CreateFormValue(txCtx, entryID, *topic.FormID, fieldID, value); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Auto-response is best effort: the ticket exists either way.
	if topic.AutoResp > 0 {
		s.sendAutoResponse(ctx, params.Email, ticket)
	}

	return ticket, nil
}

// estimateDueDate applies the SLA grace period, in hours, to now.
func (s *ticketService) estimateDueDate(ctx context.Context, slaID int64) (time.Time, error) {
	sla, err := s.slas.FindByID(ctx, slaID)
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(time.Duration(sla.GracePeriod) * time.Hour), nil
}

func (s *ticketService) sendAutoResponse(ctx context.Context, to string, ticket *models.Ticket) {
	if s.sender == nil {
		return
	}
	msg := email.Message{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("[#%s] We received your request", ticket.Number),
		Body: fmt.Sprintf("<p>Your ticket <b>#%s</b> has been created. We'll get back to you shortly.</p>",
			ticket.Number),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		log.WarnWithContext(ctx, "auto-response email failed for ticket %s: %v", ticket.Number, err)
	}
}

func (s *ticketService) Get(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	return s.repo.FindByID(ctx, ticketID)
}

func (s *ticketService) GetByNumber(ctx context.Context, number string) (*models.Ticket, error) {
	return s.repo.FindByNumber(ctx, number)
}

func (s *ticketService) Search(ctx context.Context, req *models.SearchRequest, scope search.Scope) (*models.SearchResult, error) {
	compiled, err := search.Compile(req.Filters, req.Sorts, scope)
	if err != nil {
		return nil, err
	}

	size := req.Size
	if size <= 0 || size > 100 {
		size = 25
	}
	page := req.Page
	if page < 1 {
		page = 1
	}

	tickets, err := s.repo.Search(ctx, compiled, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, compiled)
	if err != nil {
		return nil, err
	}

	return &models.SearchResult{Tickets: tickets, Total: total, Page: page, Size: size}, nil
}

func (s *ticketService) UpdateWithAudit(ctx context.Context, ticketID int64, params *models.UpdateTicketParams, actor Actor) (*models.UpdateResult, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: empty update", ticketErrors.ErrInvalidTicketData)
	}

	var result *models.UpdateResult
	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		ticket, err := s.repo.FindByID(txCtx, ticketID)
		if err != nil {
			return err
		}
		thread, err := s.threads.FindByTicket(txCtx, ticketID)
		if err != nil {
			return err
		}

		diff, err := s.engine.Diff(txCtx, ticket.Snapshot(), params.Fields)
		if err != nil {
			return err
		}
		log.Debug("ticket %d diff: %s", ticketID, log.Dump(diff.Update))

		events := diff.Events

		if len(params.FormValues) > 0 {
			formEvents, err := s.applyFormValues(txCtx, ticketID, params.FormValues)
			if err != nil {
				return err
			}
			events = append(events, formEvents...)
		}

		if len(diff.Update) > 0 {
			if err := s.repo.Update(txCtx, ticketID, diff.Update); err != nil {
				return err
			}
		}

		for _, ev := range events {
			data, err := json.Marshal(ev.Record)
			if err != nil {
				return fmt.Errorf("failed to serialize change record: %w", err)
			}
			event := &threadModels.ThreadEvent{
				ThreadID: thread.ThreadID,
				Type:     string(ev.Type),
				AgentID:  &actor.AgentID,
				Owner:    actor.Name,
				Data:     string(data),
			}
			if err := s.threads.AppendEvent(txCtx, event); err != nil {
				return err
			}
		}

		journal := false
		if diff.Entry != nil {
			entry := &threadModels.ThreadEntry{
				ThreadID: thread.ThreadID,
				AgentID:  &actor.AgentID,
				Type:     threadModels.EntryTypeNote,
				Owner:    actor.Name,
				Subject:  &diff.Entry.Subject,
				Body:     diff.Entry.Body,
			}
			if err := s.threads.AppendEntry(txCtx, entry); err != nil {
				return err
			}
			journal = true
		}

		updated, err := s.repo.FindByID(txCtx, ticketID)
		if err != nil {
			return err
		}
		result = &models.UpdateResult{Ticket: updated, EventCount: len(events), Journal: journal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyFormValues diffs and persists a custom form-value batch, keyed
// by field id; events use the field's display label.
func (s *ticketService) applyFormValues(ctx context.Context, ticketID int64, updates map[int64]string) ([]audit.Event, error) {
	stored, err := s.repo.FormValues(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	byField := make(map[int64]models.TicketFormValue, len(stored))
	for _, v := range stored {
		if v.FieldID != nil {
			byField[*v.FieldID] = v
		}
	}

	var events []audit.Event
	for fieldID, newValue := range updates {
		current, ok := byField[fieldID]
		if !ok {
			continue
		}

		var prev interface{}
		if current.Value != nil {
			prev = *current.Value
		}
		ev, changed := s.engine.FormValueEvent(current.Label, prev, newValue)
		if !changed {
			continue
		}

		if err := s.repo.UpdateFormValue(ctx, current.ValueID, newValue); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (s *ticketService) Delete(ctx context.Context, ticketID int64) error {
	return s.repo.Delete(ctx, ticketID)
}
