package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SLURRY_FILE", "")
	t.Setenv("PPROF_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data/sample_slurries.csv", cfg.Data.SlurryFile)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/welltwin")
	t.Setenv("SLURRY_FILE", "/data/slurries.xlsx")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_PORT", "6161")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, "/data/slurries.xlsx", cfg.Data.SlurryFile)
	assert.True(t, cfg.Profiling.Enabled)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
