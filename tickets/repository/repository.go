package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// TicketRepository defines the interface for ticket database operations.
type TicketRepository interface {
	// Create inserts a ticket and fills in its generated id.
	Create(ctx context.Context, ticket *models.Ticket) error

	// FindByID fetches one ticket by primary key.
	FindByID(ctx context.Context, ticketID int64) (*models.Ticket, error)

	// FindByNumber fetches one ticket by its public reference number.
	FindByNumber(ctx context.Context, number string) (*models.Ticket, error)

	// NumberExists reports whether a reference number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)

	// Search executes a compiled search query with pagination.
	Search(ctx context.Context, query *search.CompiledQuery, limit, offset int) ([]models.Ticket, error)

	// Count executes the compiled query's COUNT side for the pagination envelope.
	Count(ctx context.Context, query *search.CompiledQuery) (int64, error)

	// Update applies a sparse column update keyed by column name.
	Update(ctx context.Context, ticketID int64, fields map[string]interface{}) error

	// Delete removes a ticket; thread rows cascade at the schema level.
	Delete(ctx context.Context, ticketID int64) error

	// FormValues lists the ticket's custom form values with their field labels.
	FormValues(ctx context.Context, ticketID int64) ([]models.TicketFormValue, error)

	// UpdateFormValue overwrites one stored form value.
	UpdateFormValue(ctx context.Context, valueID int64, value string) error

	// CreateFormEntry attaches a form instance to a ticket.
	CreateFormEntry(ctx context.Context, formID, ticketID int64) (int64, error)

	// CreateFormValue stores one value under a form entry.
	CreateFormValue(ctx context.Context, entryID, formID, fieldID int64, value string) error

	// WithTransaction runs fn inside a database transaction. Repository
	// calls made with the ctx passed to fn join that transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
