package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/pushkraft/internal/application"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var (
		params     map[string]string
		list       bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "seed [path]",
		Short: "Turn a project into a new one by applying its seed transforms",
		Long: "Use the project as a template: collect the parameters and transforms proposed\n" +
			"by recipe contributors and apply them in place with the given --param values.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			svc := newDeliveryService(cmd, root)

			if list {
				analysis, err := svc.Analyze(cmd.Context(), path, domain.AnalysisOptions{Full: true})
				if err != nil {
					return fmt.Errorf("analysis failed: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, analysis.SeedAnalysis)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSeed(analysis.SeedAnalysis))
				return nil
			}

			seed, err := svc.Seed(cmd.Context(), path, domain.ParameterValues(params))
			if errors.Is(err, application.ErrNotUsableAsSeed) {
				return fmt.Errorf("%s: no contributor proposed seed parameters", path)
			}
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, seed)
			}
			applied := 0
			for _, r := range seed.TransformRecipes {
				applied += len(r.Recipe.Transforms)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d transform(s) from %d recipe(s)\n", applied, len(seed.TransformRecipes))
			return nil
		},
	}

	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "Parameter value as name=value (repeatable)")
	cmd.Flags().BoolVar(&list, "list", false, "List seed parameters and transforms without applying them")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
