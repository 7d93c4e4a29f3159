package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/pushkraft/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		scanMode      string
		force         bool
		full          bool
		disabledGoals []string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.FileName + " configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, config.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.ProjectConfig{
				ScanMode:      domain.ScanMode(scanMode),
				Full:          full,
				DisabledGoals: disabledGoals,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("rendering config: %w", err)
			}
			if err := os.WriteFile(dest, data, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&scanMode, "scan-mode", string(domain.ScanConcurrent), "Scanner execution: concurrent or sequential")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)
	cmd.Flags().BoolVar(&full, "full", false, "Always run full analyses")
	cmd.Flags().StringSliceVar(&disabledGoals, "disable-goal", nil, "Check goal to suppress by display name (repeatable)")

	return cmd
}
