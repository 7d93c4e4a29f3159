package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Describe the technology stack of a project",
		Long: "Run every registered scanner over the project and print the merged analysis.\n" +
			"With --full the seed analysis, scores, code inspections and git status are included.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := newDeliveryService(cmd, root)
			analysis, err := svc.Analyze(cmd.Context(), path, domain.AnalysisOptions{Full: full})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, analysis)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output analysis as JSON")
	cmd.Flags().BoolVar(&full, "full", false, "Include seed analysis, scores, inspections and git status")

	return cmd
}
