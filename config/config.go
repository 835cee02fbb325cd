// Package config handles process configuration: .env loading, provider
// credentials, and defaults for the agent loop and logging.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config carries all process-level settings.
type Config struct {
	Agent AgentConfig
	Log   LogConfig
}

// AgentConfig configures the reasoning backend and loop bounds.
type AgentConfig struct {
	Provider      string // "openai" (default) or "anthropic"
	Model         string // provider model id; empty means adapter default
	MaxIterations int    // default 5
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string // default "info"
	Format string // "text" (default) or "json"
}

// Default returns a Config populated with all default values.
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			Provider:      ProviderOpenAI,
			MaxIterations: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults overlaid with environment variables.
// A .env file in the working directory is loaded first when present
// (missing files are not an error, matching dotenv conventions).
//
// Recognized variables: AGENTPRO_PROVIDER, AGENTPRO_MODEL,
// AGENTPRO_MAX_ITERATIONS, AGENTPRO_LOG_LEVEL, AGENTPRO_LOG_FORMAT, plus
// the provider credentials below.
func Load() *Config {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("AGENTPRO_PROVIDER"); v != "" {
		cfg.Agent.Provider = v
	}
	if v := os.Getenv("AGENTPRO_MODEL"); v != "" {
		cfg.Agent.Model = v
	}
	if v := os.Getenv("AGENTPRO_MAX_ITERATIONS"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			cfg.Agent.MaxIterations = n
		}
	}
	if v := os.Getenv("AGENTPRO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AGENTPRO_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return cfg
}

// OpenAIAPIKey returns the OpenAI credential from the environment.
func OpenAIAPIKey() string { return os.Getenv("OPENAI_API_KEY") }

// AnthropicAPIKey returns the Anthropic credential from the environment.
func AnthropicAPIKey() string { return os.Getenv("ANTHROPIC_API_KEY") }

// Validate checks that the selected provider is known and its credential is
// present. Absence of a usable credential is a hard configuration error
// reported before any agent work starts, never a silent no-op.
func (c *Config) Validate() error {
	switch c.Agent.Provider {
	case ProviderOpenAI:
		if OpenAIAPIKey() == "" {
			return fmt.Errorf("config: OPENAI_API_KEY environment variable is not set")
		}
	case ProviderAnthropic:
		if AnthropicAPIKey() == "" {
			return fmt.Errorf("config: ANTHROPIC_API_KEY environment variable is not set")
		}
	default:
		return fmt.Errorf("config: unknown provider %q (expected %q or %q)",
			c.Agent.Provider, ProviderOpenAI, ProviderAnthropic)
	}
	return nil
}
