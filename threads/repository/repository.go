package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/threads/models"
)

// ThreadRepository defines the interface for thread database operations.
// Entries and events are append-only; nothing here mutates or deletes them.
type ThreadRepository interface {
	// Create opens a thread for a ticket and returns its id.
	Create(ctx context.Context, ticketID int64) (int64, error)

	// FindByTicket fetches the ticket's thread.
	FindByTicket(ctx context.Context, ticketID int64) (*models.Thread, error)

	// AppendEntry stores a narrative post and fills in its generated id.
	AppendEntry(ctx context.Context, entry *models.ThreadEntry) error

	// AppendEvent stores a structured change event and fills in its id.
	AppendEvent(ctx context.Context, event *models.ThreadEvent) error

	// ListEntries returns the thread's posts in creation order.
	ListEntries(ctx context.Context, threadID int64) ([]models.ThreadEntry, error)

	// ListEvents returns the thread's change events in creation order.
	ListEvents(ctx context.Context, threadID int64) ([]models.ThreadEvent, error)

	// AddCollaborator cc's a user on a thread.
	AddCollaborator(ctx context.Context, threadID, userID int64, role string) error

	// ListCollaborators returns the thread's collaborators.
	ListCollaborators(ctx context.Context, threadID int64) ([]models.ThreadCollaborator, error)
}
