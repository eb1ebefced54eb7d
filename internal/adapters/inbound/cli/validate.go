package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunelint/tunelint/internal/adapters/outbound/config"
	"github.com/tunelint/tunelint/internal/adapters/outbound/dataset"
	"github.com/tunelint/tunelint/internal/adapters/outbound/gitinfo"
	"github.com/tunelint/tunelint/internal/adapters/outbound/history"
	"github.com/tunelint/tunelint/internal/adapters/outbound/tui"
	"github.com/tunelint/tunelint/internal/application"
	"github.com/tunelint/tunelint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		dataDir    string
		jsonOutput bool
		noHints    bool
		maxDefects int
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate JSONL fine-tuning files",
		Long:  "Validate each named JSONL file, or every .jsonl file in the data directory when no files are named. Arguments resolve either as direct paths or as filenames inside the data directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if noHints {
				cfg.NoHints = true
			}
			if cmd.Flags().Changed("max-defects") {
				cfg.MaxDefects = maxDefects
			}

			sc := dataset.New()
			sc.Hints = !cfg.NoHints

			svc := application.NewValidateService(sc, history.New(), gitinfo.New())
			report, err := svc.Run(cfg, args)
			if err != nil {
				return err
			}

			if len(report.Files) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNoInputs(application.DataDir(cfg), cfg.Extension))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, cfg.MaxDefects))
			}

			if !report.Summary.Passed() {
				return fmt.Errorf("%d of %d lines failed validation across %d file(s)",
					report.Summary.LinesFailed, report.Summary.LinesChecked, report.Summary.FilesFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Data directory for bare filenames and zero-argument mode")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	cmd.Flags().BoolVar(&noHints, "no-hints", false, "Disable near-miss key hints")
	cmd.Flags().IntVar(&maxDefects, "max-defects", 0, "Max defect lines printed per file (0 = unlimited)")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.RunReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
