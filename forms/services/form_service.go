package services

import (
	"context"
	"fmt"

	formErrors "github.com/gethelpdesk/helpdesk/forms/errors"
	"github.com/gethelpdesk/helpdesk/forms/models"
	"github.com/gethelpdesk/helpdesk/forms/repository"
)

// FormService defines the interface for form operations.
type FormService interface {
	// Create stores a form and its fields in one transaction.
	Create(ctx context.Context, params *models.UpsertFormParams) (*models.Form, error)

	Get(ctx context.Context, formID int64) (*models.Form, error)
	List(ctx context.Context) ([]models.Form, error)

	// Update replaces the form row and its whole field set.
	Update(ctx context.Context, formID int64, params *models.UpsertFormParams) (*models.Form, error)

	Delete(ctx context.Context, formID int64) error
}

type formService struct {
	repo repository.FormRepository
}

// NewFormService creates a new instance of the form service.
func NewFormService(repo repository.FormRepository) FormService {
	return &formService{repo: repo}
}

func (s *formService) Create(ctx context.Context, params *models.UpsertFormParams) (*models.Form, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	form := &models.Form{
		Title:        params.Title,
		Instructions: params.Instructions,
		Notes:        params.Notes,
	}
	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, form); err != nil {
			return err
		}
		return s.repo.ReplaceFields(txCtx, form.FormID, toFields(params.Fields))
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, form.FormID)
}

func (s *formService) Get(ctx context.Context, formID int64) (*models.Form, error) {
	return s.repo.FindByID(ctx, formID)
}

func (s *formService) List(ctx context.Context) ([]models.Form, error) {
	return s.repo.List(ctx)
}

func (s *formService) Update(ctx context.Context, formID int64, params *models.UpsertFormParams) (*models.Form, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	form := &models.Form{
		FormID:       formID,
		Title:        params.Title,
		Instructions: params.Instructions,
		Notes:        params.Notes,
	}
	err := s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, form); err != nil {
			return err
		}
		return s.repo.ReplaceFields(txCtx, formID, toFields(params.Fields))
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, formID)
}

func (s *formService) Delete(ctx context.Context, formID int64) error {
	return s.repo.Delete(ctx, formID)
}

func validate(params *models.UpsertFormParams) error {
	if params == nil || params.Title == "" {
		return fmt.Errorf("%w: title is required", formErrors.ErrInvalidFormData)
	}
	for _, f := range params.Fields {
		if f.Type == "" || f.Label == "" || f.Name == "" {
			return fmt.Errorf("%w: field type, label and name are required", formErrors.ErrInvalidFormData)
		}
	}
	return nil
}

func toFields(params []models.FormFieldParams) []models.FormField {
	fields := make([]models.FormField, len(params))
	for i, p := range params {
		fields[i] = models.FormField{
			OrderID:       p.OrderID,
			Type:          p.Type,
			Label:         p.Label,
			Name:          p.Name,
			Configuration: p.Configuration,
			Hint:          p.Hint,
		}
	}
	return fields
}
