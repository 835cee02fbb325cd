package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ProviderOpenAI, cfg.Agent.Provider)
	assert.Equal(t, 5, cfg.Agent.MaxIterations)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AGENTPRO_PROVIDER", "anthropic")
	t.Setenv("AGENTPRO_MODEL", "claude-3-5-sonnet-20241022")
	t.Setenv("AGENTPRO_MAX_ITERATIONS", "8")
	t.Setenv("AGENTPRO_LOG_LEVEL", "debug")
	t.Setenv("AGENTPRO_LOG_FORMAT", "json")

	cfg := Load()
	assert.Equal(t, "anthropic", cfg.Agent.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Agent.Model)
	assert.Equal(t, 8, cfg.Agent.MaxIterations)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_IgnoresInvalidMaxIterations(t *testing.T) {
	t.Setenv("AGENTPRO_MAX_ITERATIONS", "not-a-number")
	cfg := Load()
	assert.Equal(t, 5, cfg.Agent.MaxIterations)

	t.Setenv("AGENTPRO_MAX_ITERATIONS", "-3")
	cfg = Load()
	assert.Equal(t, 5, cfg.Agent.MaxIterations)
}

func TestValidate_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidate_KeyPresent(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	t.Setenv("ANTHROPIC_API_KEY", "key")
	cfg.Agent.Provider = ProviderAnthropic
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.Agent.Provider = "cohere"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
