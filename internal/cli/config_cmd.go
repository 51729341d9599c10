package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/erivers/shapesum/internal/config"
)

// Style definitions for config view.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(18)
	valueStyle = lipgloss.NewStyle()
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View the effective configuration",
		Long: `Display the effective shapesum configuration after merging defaults,
the config file, environment variables, and flags.`,
		RunE: runConfigView,
	}
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	// Title
	fmt.Fprintln(out, headerStyle.Render("shapesum Configuration"))
	fmt.Fprintln(out)

	printSection(out, "Input")
	printKV(out, "Catalog path", cfg.Input.Path)
	fmt.Fprintln(out)

	printSection(out, "Watch")
	printKV(out, "Debounce", fmt.Sprintf("%d ms", cfg.Watch.DebounceMS))
	fmt.Fprintln(out)

	return nil
}

func printSection(w io.Writer, name string) {
	fmt.Fprintf(w, "  %s\n", headerStyle.Render(name))
}

func printKV(w io.Writer, label, value string) {
	fmt.Fprintf(w, "    %s%s\n", labelStyle.Render(label), valueStyle.Render(value))
}
