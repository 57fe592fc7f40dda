package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	formErrors "github.com/gethelpdesk/helpdesk/forms/errors"
	"github.com/gethelpdesk/helpdesk/forms/models"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
)

type postgresFormRepository struct {
	client *postgres.Client
}

// NewPostgresFormRepository creates a new PostgreSQL form repository.
func NewPostgresFormRepository(client *postgres.Client) FormRepository {
	return &postgresFormRepository{client: client}
}

func (r *postgresFormRepository) Create(ctx context.Context, form *models.Form) error {
	query := `
		INSERT INTO forms (title, instructions, notes) VALUES ($1, $2, $3)
		RETURNING form_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, form.Title, form.Instructions, form.Notes).
		Scan(&form.FormID, &form.Updated, &form.Created)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

func (r *postgresFormRepository) FindByID(ctx context.Context, formID int64) (*models.Form, error) {
	var form models.Form
	query := `SELECT form_id, title, instructions, notes, updated, created FROM forms WHERE form_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &form, query, formID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", formErrors.ErrFormNotFound, formID)
		}
		return nil, fmt.Errorf("failed to find form: %w", err)
	}

	fields, err := r.ListFields(ctx, formID)
	if err != nil {
		return nil, err
	}
	form.Fields = fields
	return &form, nil
}

func (r *postgresFormRepository) List(ctx context.Context) ([]models.Form, error) {
	forms := []models.Form{}
	query := `SELECT form_id, title, instructions, notes, updated, created FROM forms ORDER BY title`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &forms, query); err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}

func (r *postgresFormRepository) Update(ctx context.Context, form *models.Form) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE forms SET title = $1, instructions = $2, notes = $3, updated = NOW() WHERE form_id = $4`,
		form.Title, form.Instructions, form.Notes, form.FormID)
	if err != nil {
		return fmt.Errorf("failed to update form: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", formErrors.ErrFormNotFound, form.FormID)
	}
	return nil
}

func (r *postgresFormRepository) Delete(ctx context.Context, formID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM forms WHERE form_id = $1`, formID)
	if err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", formErrors.ErrFormNotFound, formID)
	}
	return nil
}

func (r *postgresFormRepository) ReplaceFields(ctx context.Context, formID int64, fields []models.FormField) error {
	execer := r.client.Executor(ctx)
	if _, err := execer.ExecContext(ctx, `DELETE FROM form_fields WHERE form_id = $1`, formID); err != nil {
		return fmt.Errorf("failed to clear form fields: %w", err)
	}
	for i := range fields {
		f := &fields[i]
		f.FormID = &formID
		err := execer.QueryRowxContext(ctx, `
			INSERT INTO form_fields (form_id, order_id, type, label, name, configuration, hint)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING field_id, updated, created`,
			formID, f.OrderID, f.Type, f.Label, f.Name, f.Configuration, f.Hint).
			Scan(&f.FieldID, &f.Updated, &f.Created)
		if err != nil {
			return fmt.Errorf("failed to insert form field: %w", err)
		}
	}
	return nil
}

func (r *postgresFormRepository) ListFields(ctx context.Context, formID int64) ([]models.FormField, error) {
	fields := []models.FormField{}
	query := `
		SELECT field_id, form_id, order_id, type, label, name, configuration, hint, updated, created
		FROM form_fields WHERE form_id = $1
		ORDER BY order_id NULLS LAST, field_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &fields, query, formID); err != nil {
		return nil, fmt.Errorf("failed to list form fields: %w", err)
	}
	return fields, nil
}

func (r *postgresFormRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}
