package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/agentselect/types"
)

func TestLoader_DefaultsOnly(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.Engine.OverflowAllowance)
	assert.Len(t, cfg.Workers, 15)
}

func TestLoader_YAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agentselect.yaml")
	data := `
engine:
  overflow_allowance: 1.5
oracle:
  model: test-model
  rate_limit_rps: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Engine.OverflowAllowance)
	assert.Equal(t, "test-model", cfg.Oracle.Model)
	assert.Equal(t, 2.0, cfg.Oracle.RateLimitRPS)
	// Untouched sections keep defaults.
	assert.Len(t, cfg.Workers, 15)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("AGENTSELECT_ORACLE_MODEL", "env-model")
	t.Setenv("AGENTSELECT_ENGINE_OVERFLOW_ALLOWANCE", "1.3")
	t.Setenv("AGENTSELECT_ORACLE_TIMEOUT", "3s")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "env-model", cfg.Oracle.Model)
	assert.Equal(t, 1.3, cfg.Engine.OverflowAllowance)
	assert.Equal(t, 3*time.Second, cfg.Oracle.Timeout)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().WithConfigPath("/nonexistent/agentselect.yaml").Load()
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidConfig, types.GetErrorCode(err))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"overflow below one", func(c *Config) { c.Engine.OverflowAllowance = 0.9 }},
		{"zero concurrency", func(c *Config) { c.Engine.BatchConcurrency = 0 }},
		{"zero timeout", func(c *Config) { c.Oracle.Timeout = 0 }},
		{"negative multiplier", func(c *Config) { c.Engine.BudgetMultipliers["simple"] = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
