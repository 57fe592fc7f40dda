package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/departments/models"
)

// DepartmentRepository defines the interface for department database operations.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *models.Department) error
	FindByID(ctx context.Context, deptID int64) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, deptID int64) error
}
