package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	threadErrors "github.com/gethelpdesk/helpdesk/threads/errors"
	"github.com/gethelpdesk/helpdesk/threads/models"
)

type postgresThreadRepository struct {
	client *postgres.Client
}

// NewPostgresThreadRepository creates a new PostgreSQL thread repository.
func NewPostgresThreadRepository(client *postgres.Client) ThreadRepository {
	return &postgresThreadRepository{client: client}
}

func (r *postgresThreadRepository) Create(ctx context.Context, ticketID int64) (int64, error) {
	var threadID int64
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &threadID,
		`INSERT INTO threads (ticket_id) VALUES ($1) RETURNING thread_id`, ticketID)
	if err != nil {
		return 0, fmt.Errorf("failed to create thread: %w", err)
	}
	return threadID, nil
}

func (r *postgresThreadRepository) FindByTicket(ctx context.Context, ticketID int64) (*models.Thread, error) {
	var thread models.Thread
	query := `SELECT thread_id, ticket_id, updated, created FROM threads WHERE ticket_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &thread, query, ticketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: ticket_id=%d", threadErrors.ErrThreadNotFound, ticketID)
		}
		return nil, fmt.Errorf("failed to find thread: %w", err)
	}
	return &thread, nil
}

func (r *postgresThreadRepository) AppendEntry(ctx context.Context, entry *models.ThreadEntry) error {
	query := `
		INSERT INTO thread_entries (thread_id, agent_id, user_id, type, owner, editor, subject, body, recipients)
		VALUES (:thread_id, :agent_id, :user_id, :type, :owner, :editor, :subject, :body, :recipients)
		RETURNING entry_id, updated, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.client.Executor(ctx), query, entry)
	if err != nil {
		return fmt.Errorf("failed to append thread entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to append thread entry: no row returned")
	}
	if err := rows.Scan(&entry.EntryID, &entry.Updated, &entry.Created); err != nil {
		return fmt.Errorf("failed to scan thread entry: %w", err)
	}
	return nil
}

func (r *postgresThreadRepository) AppendEvent(ctx context.Context, event *models.ThreadEvent) error {
	query := `
		INSERT INTO thread_events (thread_id, type, agent_id, owner, user_id, group_id, dept_id, data)
		VALUES (:thread_id, :type, :agent_id, :owner, :user_id, :group_id, :dept_id, :data)
		RETURNING event_id, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.client.Executor(ctx), query, event)
	if err != nil {
		return fmt.Errorf("failed to append thread event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to append thread event: no row returned")
	}
	if err := rows.Scan(&event.EventID, &event.Created); err != nil {
		return fmt.Errorf("failed to scan thread event: %w", err)
	}
	return nil
}

func (r *postgresThreadRepository) ListEntries(ctx context.Context, threadID int64) ([]models.ThreadEntry, error) {
	entries := []models.ThreadEntry{}
	query := `
		SELECT entry_id, thread_id, agent_id, user_id, type, owner, editor, subject, body, recipients, updated, created
		FROM thread_entries WHERE thread_id = $1 ORDER BY created, entry_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &entries, query, threadID); err != nil {
		return nil, fmt.Errorf("failed to list thread entries: %w", err)
	}
	return entries, nil
}

func (r *postgresThreadRepository) ListEvents(ctx context.Context, threadID int64) ([]models.ThreadEvent, error) {
	events := []models.ThreadEvent{}
	query := `
		SELECT event_id, thread_id, type, agent_id, owner, user_id, group_id, dept_id, data, created
		FROM thread_events WHERE thread_id = $1 ORDER BY created, event_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &events, query, threadID); err != nil {
		return nil, fmt.Errorf("failed to list thread events: %w", err)
	}
	return events, nil
}

func (r *postgresThreadRepository) AddCollaborator(ctx context.Context, threadID, userID int64, role string) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`INSERT INTO thread_collaborators (thread_id, user_id, role) VALUES ($1, $2, $3)`,
		threadID, userID, role)
	if err != nil {
		return fmt.Errorf("failed to add thread collaborator: %w", err)
	}
	return nil
}

func (r *postgresThreadRepository) ListCollaborators(ctx context.Context, threadID int64) ([]models.ThreadCollaborator, error) {
	collabs := []models.ThreadCollaborator{}
	query := `
		SELECT collab_id, thread_id, user_id, role, updated, created
		FROM thread_collaborators WHERE thread_id = $1 ORDER BY collab_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &collabs, query, threadID); err != nil {
		return nil, fmt.Errorf("failed to list thread collaborators: %w", err)
	}
	return collabs, nil
}
