package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	ticketErrors "github.com/gethelpdesk/helpdesk/tickets/errors"
	"github.com/gethelpdesk/helpdesk/tickets/models"
	"github.com/gethelpdesk/helpdesk/tickets/search"
)

// postgresTicketRepository implements TicketRepository using PostgreSQL.
type postgresTicketRepository struct {
	client *postgres.Client
}

// NewPostgresTicketRepository creates a new PostgreSQL ticket repository.
func NewPostgresTicketRepository(client *postgres.Client) TicketRepository {
	return &postgresTicketRepository{client: client}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const ticketColumns = `ticket_id, number, user_id, status_id, dept_id, sla_id,
	category_id, agent_id, group_id, priority_id, topic_id, due_date,
	est_due_date, overdue, answered, title, description, updated, created`

func (r *postgresTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (
			number, user_id, status_id, dept_id, sla_id, category_id,
			agent_id, group_id, priority_id, topic_id, due_date,
			est_due_date, overdue, answered, title, description
		) VALUES (
			:number, :user_id, :status_id, :dept_id, :sla_id, :category_id,
			:agent_id, :group_id, :priority_id, :topic_id, :due_date,
			:est_due_date, :overdue, :answered, :title, :description
		)
		RETURNING ticket_id, updated, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.queryer(ctx), query, ticket)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to create ticket: no row returned")
	}
	if err := rows.Scan(&ticket.TicketID, &ticket.Updated, &ticket.Created); err != nil {
		return fmt.Errorf("failed to scan created ticket: %w", err)
	}
	return nil
}

func (r *postgresTicketRepository) FindByID(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	var ticket models.Ticket
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_id = $1`
	if err := sqlx.GetContext(ctx, r.queryer(ctx), &ticket, query, ticketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", ticketErrors.ErrTicketNotFound, ticketID)
		}
		return nil, fmt.Errorf("failed to find ticket by id: %w", err)
	}
	return &ticket, nil
}

func (r *postgresTicketRepository) FindByNumber(ctx context.Context, number string) (*models.Ticket, error) {
	var ticket models.Ticket
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE number = $1`
	if err := sqlx.GetContext(ctx, r.queryer(ctx), &ticket, query, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: number=%s", ticketErrors.ErrTicketNotFound, number)
		}
		return nil, fmt.Errorf("failed to find ticket by number: %w", err)
	}
	return &ticket, nil
}

func (r *postgresTicketRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM tickets WHERE number = $1)`
	if err := sqlx.GetContext(ctx, r.queryer(ctx), &exists, query, number); err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}
	return exists, nil
}

func (r *postgresTicketRepository) Search(ctx context.Context, query *search.CompiledQuery, limit, offset int) ([]models.Ticket, error) {
	builder := query.Apply(
		psql.Select("tickets.*").From("tickets"),
	).Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	tickets := []models.Ticket{}
	if err := sqlx.SelectContext(ctx, r.queryer(ctx), &tickets, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to execute ticket search: %w", err)
	}
	return tickets, nil
}

func (r *postgresTicketRepository) Count(ctx context.Context, query *search.CompiledQuery) (int64, error) {
	builder := query.ApplyFilters(
		psql.Select("COUNT(*)").From("tickets"),
	)

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, r.queryer(ctx), &total, sqlStr, args...); err != nil {
		return 0, fmt.Errorf("failed to count ticket search: %w", err)
	}
	return total, nil
}

func (r *postgresTicketRepository) Update(ctx context.Context, ticketID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	setMap := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		setMap[k] = v
	}
	setMap["updated"] = time.Now()

	sqlStr, args, err := psql.Update("tickets").
		SetMap(setMap).
		Where(sq.Eq{"ticket_id": ticketID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build ticket update: %w", err)
	}

	res, err := r.queryer(ctx).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ticketErrors.ErrTicketNotFound, ticketID)
	}
	return nil
}

func (r *postgresTicketRepository) Delete(ctx context.Context, ticketID int64) error {
	res, err := r.queryer(ctx).ExecContext(ctx, `DELETE FROM tickets WHERE ticket_id = $1`, ticketID)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ticketErrors.ErrTicketNotFound, ticketID)
	}
	return nil
}

func (r *postgresTicketRepository) FormValues(ctx context.Context, ticketID int64) ([]models.TicketFormValue, error) {
	query := `
		SELECT fv.value_id, fv.entry_id, fv.field_id, COALESCE(ff.label, '') AS label, fv.value
		FROM form_values fv
		JOIN form_entries fe ON fe.entry_id = fv.entry_id
		LEFT JOIN form_fields ff ON ff.field_id = fv.field_id
		WHERE fe.ticket_id = $1
		ORDER BY fv.value_id`

	values := []models.TicketFormValue{}
	if err := sqlx.SelectContext(ctx, r.queryer(ctx), &values, query, ticketID); err != nil {
		return nil, fmt.Errorf("failed to load ticket form values: %w", err)
	}
	return values, nil
}

func (r *postgresTicketRepository) UpdateFormValue(ctx context.Context, valueID int64, value string) error {
	_, err := r.queryer(ctx).ExecContext(ctx,
		`UPDATE form_values SET value = $1, updated = NOW() WHERE value_id = $2`, value, valueID)
	if err != nil {
		return fmt.Errorf("failed to update form value: %w", err)
	}
	return nil
}

func (r *postgresTicketRepository) CreateFormEntry(ctx context.Context, formID, ticketID int64) (int64, error) {
	var entryID int64
	err := sqlx.GetContext(ctx, r.queryer(ctx), &entryID,
		`INSERT INTO form_entries (form_id, ticket_id) VALUES ($1, $2) RETURNING entry_id`,
		formID, ticketID)
	if err != nil {
		return 0, fmt.Errorf("failed to create form entry: %w", err)
	}
	return entryID, nil
}

func (r *postgresTicketRepository) CreateFormValue(ctx context.Context, entryID, formID, fieldID int64, value string) error {
	_, err := r.queryer(ctx).ExecContext(ctx,
		`INSERT INTO form_values (entry_id, form_id, field_id, value) VALUES ($1, $2, $3, $4)`,
		entryID, formID, fieldID, value)
	if err != nil {
		return fmt.Errorf("failed to create form value: %w", err)
	}
	return nil
}

func (r *postgresTicketRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}

// queryer returns the active transaction when one is on the context,
// otherwise the pooled connection.
func (r *postgresTicketRepository) queryer(ctx context.Context) sqlx.ExtContext {
	return r.client.Executor(ctx)
}
