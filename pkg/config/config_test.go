package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "", cfg.DatabaseURL)
		assert.Equal(t, 4, cfg.MaxConns)
		assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
		assert.Equal(t, "smart_balance", cfg.DefaultStrategy)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskrank")
		t.Setenv("DATABASE_MAX_CONNS", "16")
		t.Setenv("DEFAULT_STRATEGY", "fastest_wins")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "postgres://localhost:5432/taskrank", cfg.DatabaseURL)
		assert.Equal(t, 16, cfg.MaxConns)
		assert.Equal(t, "fastest_wins", cfg.DefaultStrategy)
	})

	t.Run("non-numeric conn count falls back", func(t *testing.T) {
		t.Setenv("DATABASE_MAX_CONNS", "many")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.MaxConns)
	})
}

func TestConfig_EnvironmentChecks(t *testing.T) {
	dev := &Config{AppEnv: "development"}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{AppEnv: "production"}
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
