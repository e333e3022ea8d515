package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "anonymous", cfg.DefaultIdentity)
	assert.Equal(t, 720*time.Hour, cfg.IdentityTokenTTL)
	assert.Equal(t, time.Second, cfg.AutosaveDelay)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.IsSQL())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":           "9090",
		"STORE_DRIVER":   "sqlite",
		"DATABASE_DSN":   "/tmp/credgen.db",
		"AUTOSAVE_DELAY": "250ms",
		"HISTORY_LIMIT":  "10",
	})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsSQL())
	assert.Equal(t, 250*time.Millisecond, cfg.AutosaveDelay)
	assert.Equal(t, 10, cfg.HistoryLimit)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr error
	}{
		{
			name:    "production with dev secret",
			vars:    map[string]string{"ENV": "production"},
			wantErr: ErrInsecureSecret,
		},
		{
			name:    "unknown store",
			vars:    map[string]string{"STORE_DRIVER": "cassandra"},
			wantErr: ErrUnknownStore,
		},
		{
			name:    "sql store without dsn",
			vars:    map[string]string{"STORE_DRIVER": "postgres"},
			wantErr: ErrMissingDatabaseDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := LoadFrom(map[string]string{"AUTOSAVE_DELAY": "soon"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"HISTORY_LIMIT": "0"})
	assert.Error(t, err)
}

func TestProductionWithSecret(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"ENV": "production", "IDENTITY_SECRET": "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.IdentitySecret)
}
