package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	deptErrors "github.com/gethelpdesk/helpdesk/departments/errors"
	"github.com/gethelpdesk/helpdesk/departments/models"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
)

type postgresDepartmentRepository struct {
	client *postgres.Client
}

// NewPostgresDepartmentRepository creates a new PostgreSQL department repository.
func NewPostgresDepartmentRepository(client *postgres.Client) DepartmentRepository {
	return &postgresDepartmentRepository{client: client}
}

const deptColumns = `dept_id, sla_id, schedule_id, email, manager_id, name, signature, updated, created`

func (r *postgresDepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	query := `
		INSERT INTO departments (sla_id, schedule_id, email, manager_id, name, signature)
		VALUES (:sla_id, :schedule_id, :email, :manager_id, :name, :signature)
		RETURNING dept_id, updated, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.client.Executor(ctx), query, dept)
	if err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to create department: no row returned")
	}
	if err := rows.Scan(&dept.DeptID, &dept.Updated, &dept.Created); err != nil {
		return fmt.Errorf("failed to scan created department: %w", err)
	}
	return nil
}

func (r *postgresDepartmentRepository) FindByID(ctx context.Context, deptID int64) (*models.Department, error) {
	var dept models.Department
	query := `SELECT ` + deptColumns + ` FROM departments WHERE dept_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &dept, query, deptID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", deptErrors.ErrDepartmentNotFound, deptID)
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}
	return &dept, nil
}

func (r *postgresDepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	depts := []models.Department{}
	query := `SELECT ` + deptColumns + ` FROM departments ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &depts, query); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return depts, nil
}

func (r *postgresDepartmentRepository) Update(ctx context.Context, dept *models.Department) error {
	query := `
		UPDATE departments SET sla_id = :sla_id, schedule_id = :schedule_id, email = :email,
			manager_id = :manager_id, name = :name, signature = :signature, updated = NOW()
		WHERE dept_id = :dept_id`
	res, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, dept)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", deptErrors.ErrDepartmentNotFound, dept.DeptID)
	}
	return nil
}

func (r *postgresDepartmentRepository) Delete(ctx context.Context, deptID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM departments WHERE dept_id = $1`, deptID)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", deptErrors.ErrDepartmentNotFound, deptID)
	}
	return nil
}
