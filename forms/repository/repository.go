package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/forms/models"
)

// FormRepository defines the interface for form database operations.
type FormRepository interface {
	// Create inserts a form row and fills in its generated id.
	Create(ctx context.Context, form *models.Form) error

	// FindByID fetches a form together with its fields.
	FindByID(ctx context.Context, formID int64) (*models.Form, error)

	List(ctx context.Context) ([]models.Form, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, formID int64) error

	// ReplaceFields swaps the form's field set wholesale.
	ReplaceFields(ctx context.Context, formID int64, fields []models.FormField) error

	// ListFields returns the form's fields in display order.
	ListFields(ctx context.Context, formID int64) ([]models.FormField, error)

	// WithTransaction runs fn inside a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
