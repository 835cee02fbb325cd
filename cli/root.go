// Package cli implements the agentpro command line interface: a one-shot
// task runner and the interactive terminal UI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpro/agentpro"
	"github.com/agentpro/agentpro/config"
	"github.com/agentpro/agentpro/logging"
)

// flags shared by the run and tui subcommands.
var (
	provider      string
	modelID       string
	maxIterations int
	logLevel      string
	logFormat     string
)

// NewRootCmd creates the top-level agentpro CLI command with all subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentpro",
		Short: "ReAct research agent",
		Long: `AgentPro runs a ReAct (Reasoning + Acting) research agent: given a task,
it iterates between reasoning with a language model, searching the internet,
and writing reports until it produces a final answer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&provider, "provider", "", "model provider: openai|anthropic (default from env)")
	cmd.PersistentFlags().StringVar(&modelID, "model", "", "provider model id (default per provider)")
	cmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", 0, "iteration budget per task (default 5)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json")

	cmd.AddCommand(
		newRunCmd(),
		newTUICmd(),
	)

	return cmd
}

// loadConfig builds the effective configuration: environment (and .env)
// overlaid with any explicitly set flags.
func loadConfig() *config.Config {
	cfg := config.Load()
	if provider != "" {
		cfg.Agent.Provider = provider
	}
	if modelID != "" {
		cfg.Agent.Model = modelID
	}
	if maxIterations > 0 {
		cfg.Agent.MaxIterations = maxIterations
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	return cfg
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
}

func buildAgent(cfg *config.Config, logger logging.Logger) (agentRunner, error) {
	a, err := agentpro.New(func(o *agentpro.Options) {
		o.Config = cfg
		o.Logger = logger
	})
	if err != nil {
		return nil, fmt.Errorf("initializing agent: %w", err)
	}
	return a, nil
}
