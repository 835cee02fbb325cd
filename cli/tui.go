package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpro/agentpro/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Launch the interactive terminal UI",
		Long:    "Launch a terminal UI with a topic input and a live output view; research runs in the background while the interface stays responsive.",
		Example: `  agentpro tui
  agentpro tui --provider anthropic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			a, err := buildAgent(cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			app := tui.NewApp(a)
			if err := app.Run(); err != nil {
				return fmt.Errorf("UI error: %w", err)
			}
			return nil
		},
	}
}
