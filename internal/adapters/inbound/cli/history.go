package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunelint/tunelint/internal/adapters/outbound/config"
	"github.com/tunelint/tunelint/internal/adapters/outbound/history"
	"github.com/tunelint/tunelint/internal/adapters/outbound/tui"
	"github.com/tunelint/tunelint/internal/application"
)

func newHistoryCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past validation runs",
		Long:  "Show stored summaries of past validation runs for the data directory, newest last.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			entries, err := history.New().Load(application.DataDir(cfg))
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Data directory whose history to show")

	return cmd
}
