package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/pushkraft/internal/adapters/outbound/builtin"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/preferences"
	"github.com/abdidvp/pushkraft/internal/adapters/outbound/project"
	"github.com/abdidvp/pushkraft/internal/application"
)

// newDeliveryService wires the built-in pack and local adapters, logging
// to the command's error stream.
func newDeliveryService(cmd *cobra.Command, opts *rootOptions) *application.DeliveryService {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose, opts.logFormat)
	return application.NewDeliveryService(
		builtin.Pack(),
		project.New(),
		config.New(),
		gitinfo.New(),
		preferences.Factory(),
	).WithLogger(logger)
}

func resolvePath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
