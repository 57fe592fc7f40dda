package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	settingErrors "github.com/gethelpdesk/helpdesk/settings/errors"
	"github.com/gethelpdesk/helpdesk/settings/models"
)

type postgresSettingsRepository struct {
	client *postgres.Client
}

// NewPostgresSettingsRepository creates a new PostgreSQL settings repository.
func NewPostgresSettingsRepository(client *postgres.Client) SettingsRepository {
	return &postgresSettingsRepository{client: client}
}

func (r *postgresSettingsRepository) Get(ctx context.Context, namespace, key string) (*models.Setting, error) {
	var setting models.Setting
	query := `SELECT id, namespace, key, value, updated FROM settings WHERE namespace = $1 AND key = $2`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &setting, query, namespace, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", settingErrors.ErrSettingNotFound, namespace, key)
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

func (r *postgresSettingsRepository) ListNamespace(ctx context.Context, namespace string) ([]models.Setting, error) {
	settings := []models.Setting{}
	query := `SELECT id, namespace, key, value, updated FROM settings WHERE namespace = $1 ORDER BY key`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &settings, query, namespace); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (r *postgresSettingsRepository) Set(ctx context.Context, namespace, key, value string) error {
	query := `
		INSERT INTO settings (namespace, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated = NOW()`
	if _, err := r.client.Executor(ctx).ExecContext(ctx, query, namespace, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (r *postgresSettingsRepository) SetAll(ctx context.Context, namespace string, values map[string]string) error {
	return r.client.WithTransaction(ctx, func(txCtx context.Context) error {
		for key, value := range values {
			if err := r.Set(txCtx, namespace, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postgresSettingsRepository) Delete(ctx context.Context, namespace, key string) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`DELETE FROM settings WHERE namespace = $1 AND key = $2`, namespace, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", settingErrors.ErrSettingNotFound, namespace, key)
	}
	return nil
}
