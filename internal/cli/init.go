package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/erivers/shapesum/internal/config"
)

func newInitCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter .shapesum.yaml config file",
		Long: `Create a .shapesum.yaml configuration file in the current directory.

By default the file carries the built-in defaults (catalog shapes.txt).
With --interactive, a short form asks for the catalog path and the
watch-mode debounce before writing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFile + "." + config.DefaultConfigType

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			cfg := config.Default()
			if interactive {
				confirmed, err := runInteractiveInit(cfg)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted; nothing written.")
					return nil
				}
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := config.WriteConfig(cfg, path); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", path)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "  1. Put shape records in %s (e.g. \"C 2\", \"R 3 4\", \"T 3 4 5\", \"S 5\")\n", cfg.Input.Path)
			fmt.Fprintln(out, "  2. Run: shapesum report")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "configure interactively")

	return cmd
}

// runInteractiveInit asks for the config values and whether to write them.
// It mutates cfg in place and reports whether the user confirmed.
func runInteractiveInit(cfg *config.Config) (bool, error) {
	catalogPath := cfg.Input.Path
	debounce := strconv.Itoa(cfg.Watch.DebounceMS)
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shape catalog path").
				Description("Plain-text file with one shape record per line").
				Value(&catalogPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Watch debounce (ms)").
				Description("How long watch mode coalesces bursts of file events").
				Value(&debounce).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive integer")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Write .shapesum.yaml?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("interactive init: %w", err)
	}

	cfg.Input.Path = catalogPath
	cfg.Watch.DebounceMS, _ = strconv.Atoi(debounce)
	return confirmed, nil
}
