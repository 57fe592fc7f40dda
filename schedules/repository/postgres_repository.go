package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	schedErrors "github.com/gethelpdesk/helpdesk/schedules/errors"
	"github.com/gethelpdesk/helpdesk/schedules/models"
)

type postgresScheduleRepository struct {
	client *postgres.Client
}

// NewPostgresScheduleRepository creates a new PostgreSQL schedule repository.
func NewPostgresScheduleRepository(client *postgres.Client) ScheduleRepository {
	return &postgresScheduleRepository{client: client}
}

func (r *postgresScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (name, timezone, description) VALUES ($1, $2, $3)
		RETURNING schedule_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query,
		schedule.Name, schedule.Timezone, schedule.Description).
		Scan(&schedule.ScheduleID, &schedule.Updated, &schedule.Created)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *postgresScheduleRepository) FindByID(ctx context.Context, scheduleID int64) (*models.Schedule, error) {
	var schedule models.Schedule
	query := `SELECT schedule_id, name, timezone, description, updated, created FROM schedules WHERE schedule_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &schedule, query, scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", schedErrors.ErrScheduleNotFound, scheduleID)
		}
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	entries, err := r.ListEntries(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	schedule.Entries = entries
	return &schedule, nil
}

func (r *postgresScheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	schedules := []models.Schedule{}
	query := `SELECT schedule_id, name, timezone, description, updated, created FROM schedules ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &schedules, query); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE schedules SET name = $1, timezone = $2, description = $3, updated = NOW() WHERE schedule_id = $4`,
		schedule.Name, schedule.Timezone, schedule.Description, schedule.ScheduleID)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", schedErrors.ErrScheduleNotFound, schedule.ScheduleID)
	}
	return nil
}

func (r *postgresScheduleRepository) Delete(ctx context.Context, scheduleID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM schedules WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", schedErrors.ErrScheduleNotFound, scheduleID)
	}
	return nil
}

func (r *postgresScheduleRepository) ReplaceEntries(ctx context.Context, scheduleID int64, entries []models.ScheduleEntry) error {
	execer := r.client.Executor(ctx)
	if _, err := execer.ExecContext(ctx, `DELETE FROM schedule_entries WHERE schedule_id = $1`, scheduleID); err != nil {
		return fmt.Errorf("failed to clear schedule entries: %w", err)
	}
	for i := range entries {
		e := &entries[i]
		e.ScheduleID = &scheduleID
		err := execer.QueryRowxContext(ctx, `
			INSERT INTO schedule_entries
				(schedule_id, name, repeats, starts_on, starts_at, end_on, ends_at, stops_on, day, week, month)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING sched_entry_id, updated, created`,
			scheduleID, e.Name, e.Repeats, e.StartsOn, e.StartsAt, e.EndOn, e.EndsAt, e.StopsOn,
			e.Day, e.Week, e.Month).
			Scan(&e.SchedEntryID, &e.Updated, &e.Created)
		if err != nil {
			return fmt.Errorf("failed to insert schedule entry: %w", err)
		}
	}
	return nil
}

func (r *postgresScheduleRepository) ListEntries(ctx context.Context, scheduleID int64) ([]models.ScheduleEntry, error) {
	entries := []models.ScheduleEntry{}
	query := `
		SELECT sched_entry_id, schedule_id, name, repeats, starts_on, starts_at, end_on, ends_at,
		       stops_on, day, week, month, updated, created
		FROM schedule_entries WHERE schedule_id = $1
		ORDER BY sched_entry_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &entries, query, scheduleID); err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

func (r *postgresScheduleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}
