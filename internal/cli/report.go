package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erivers/shapesum/internal/config"
	"github.com/erivers/shapesum/internal/parser"
	"github.com/erivers/shapesum/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [catalog]",
		Short: "Render the shape summary report",
		Long: `Render the summary report for a shape catalog.

The catalog path comes from the positional argument if given, otherwise
from the configured input path (default: shapes.txt). Each shape is
printed by variant name in ascending area order, followed by the
aggregate totals. Records that cannot be understood are reported on
stderr and skipped.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			path := cfg.Input.Path
			if len(args) == 1 {
				path = args[0]
			}

			loader := parser.NewLoader()
			loader.Diag = cmd.ErrOrStderr()

			shapes, err := loader.LoadFile(path)
			if err != nil {
				return err
			}

			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d shapes from %s\n", len(shapes), path)
			}

			report.Run(cmd.OutOrStdout(), shapes)
			return nil
		},
	}
}
