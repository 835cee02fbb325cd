package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentpro/agentpro/agent"
)

// agentRunner is the part of the agent surface the CLI needs. Narrowing to
// an interface keeps the commands testable without a real backend.
type agentRunner interface {
	Run(ctx context.Context, task string) (string, error)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <task>",
		Short: "Run a single research task and print the result",
		Example: `  agentpro run "Research the current state of quantum computing and provide a brief summary report."
  agentpro run --provider anthropic "What are the tradeoffs of Go generics?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			a, err := buildAgent(cfg, newLogger(cfg))
			if err != nil {
				return err
			}

			task := strings.Join(args, " ")
			result, err := a.Run(cmd.Context(), task)
			if err != nil && !errors.Is(err, agent.ErrMaxIterations) {
				return err
			}
			// Budget exhaustion still yields a printable sentinel message.
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
