package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func newInterpretCmd(root *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "interpret [path]",
		Short: "Show which goals the interpreters chose for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := newDeliveryService(cmd, root)
			report, err := svc.Plan(cmd.Context(), path, domain.AnalysisOptions{Full: full})
			if err != nil {
				return fmt.Errorf("interpretation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report.Interpretation)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInterpretation(report.Interpretation, report.Composite))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output interpretation as JSON")
	cmd.Flags().BoolVar(&full, "full", false, "Interpret a full analysis")

	return cmd
}
