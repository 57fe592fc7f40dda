package repository

import (
	"context"

	"github.com/gethelpdesk/helpdesk/settings/models"
)

// SettingsRepository defines the interface for settings storage.
type SettingsRepository interface {
	// Get fetches one value under a namespace.
	Get(ctx context.Context, namespace, key string) (*models.Setting, error)

	// ListNamespace returns a namespace's settings ordered by key.
	ListNamespace(ctx context.Context, namespace string) ([]models.Setting, error)

	// Set upserts one value.
	Set(ctx context.Context, namespace, key, value string) error

	// SetAll upserts a whole namespace batch in one transaction.
	SetAll(ctx context.Context, namespace string, values map[string]string) error

	Delete(ctx context.Context, namespace, key string) error
}
