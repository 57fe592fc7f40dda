package services

import (
	"context"
	"fmt"

	threadErrors "github.com/gethelpdesk/helpdesk/threads/errors"
	"github.com/gethelpdesk/helpdesk/threads/models"
	"github.com/gethelpdesk/helpdesk/threads/repository"
)

// ThreadView is a thread with its full entry and event history.
type ThreadView struct {
	Thread  *models.Thread        `json:"thread"`
	Entries []models.ThreadEntry  `json:"entries"`
	Events  []models.ThreadEvent  `json:"events"`
}

// PostEntryParams carries a new narrative post for a ticket's thread.
type PostEntryParams struct {
	Type    string  `json:"type"`
	Subject *string `json:"subject"`
	Body    string  `json:"body"`
}

// ThreadService defines the interface for thread operations.
type ThreadService interface {
	// GetByTicket returns the ticket's thread with entries and events.
	GetByTicket(ctx context.Context, ticketID int64) (*ThreadView, error)

	// PostEntry appends a narrative post by the named actor.
	PostEntry(ctx context.Context, ticketID int64, agentID *int64, owner string, params *PostEntryParams) (*models.ThreadEntry, error)

	// AddCollaborator cc's a user on the ticket's thread.
	AddCollaborator(ctx context.Context, ticketID, userID int64, role string) error
}

type threadService struct {
	repo repository.ThreadRepository
}

// NewThreadService creates a new instance of the thread service.
func NewThreadService(repo repository.ThreadRepository) ThreadService {
	return &threadService{repo: repo}
}

func (s *threadService) GetByTicket(ctx context.Context, ticketID int64) (*ThreadView, error) {
	thread, err := s.repo.FindByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntries(ctx, thread.ThreadID)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListEvents(ctx, thread.ThreadID)
	if err != nil {
		return nil, err
	}

	return &ThreadView{Thread: thread, Entries: entries, Events: events}, nil
}

func (s *threadService) PostEntry(ctx context.Context, ticketID int64, agentID *int64, owner string, params *PostEntryParams) (*models.ThreadEntry, error) {
	if params == nil || params.Body == "" {
		return nil, fmt.Errorf("%w: body is required", threadErrors.ErrInvalidThreadData)
	}
	switch params.Type {
	case models.EntryTypeNote, models.EntryTypeMessage, models.EntryTypeResponse:
	default:
		return nil, fmt.Errorf("%w: unknown entry type %q", threadErrors.ErrInvalidThreadData, params.Type)
	}

	thread, err := s.repo.FindByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	entry := &models.ThreadEntry{
		ThreadID: thread.ThreadID,
		AgentID:  agentID,
		Type:     params.Type,
		Owner:    owner,
		Subject:  params.Subject,
		Body:     params.Body,
	}
	if err := s.repo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *threadService) AddCollaborator(ctx context.Context, ticketID, userID int64, role string) error {
	thread, err := s.repo.FindByTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	return s.repo.AddCollaborator(ctx, thread.ThreadID, userID, role)
}
