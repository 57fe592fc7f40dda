package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/schedules/models"
)

// ScheduleRepository defines the interface for schedule database operations.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error

	// FindByID fetches a schedule together with its entries.
	FindByID(ctx context.Context, scheduleID int64) (*models.Schedule, error)

	List(ctx context.Context) ([]models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, scheduleID int64) error

	// ReplaceEntries swaps the schedule's entry set wholesale.
	ReplaceEntries(ctx context.Context, scheduleID int64, entries []models.ScheduleEntry) error
	ListEntries(ctx context.Context, scheduleID int64) ([]models.ScheduleEntry, error)

	// WithTransaction runs fn inside a database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
