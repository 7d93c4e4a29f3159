package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func newPlanCmd(root *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		full       bool
		ciMode     bool
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "plan [path]",
		Short: "Print the delivery goal graph for a project",
		Long: "Interpret the project and lay its goals out in delivery phases:\n" +
			"checks, build, test, container build, release and deploy.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := newDeliveryService(cmd, root)
			report, err := svc.Plan(cmd.Context(), path, domain.AnalysisOptions{Full: full})
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(report))
			}

			if ciMode {
				if report.Composite == nil {
					return fmt.Errorf("no scores to compare against --min %.1f", minScore)
				}
				if *report.Composite < minScore {
					return fmt.Errorf("composite score %.2f is below minimum %.1f", *report.Composite, minScore)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output plan as JSON")
	cmd.Flags().BoolVar(&full, "full", false, "Plan from a full analysis")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the composite score is below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum composite score (0-5) for CI mode")

	return cmd
}
