package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erivers/shapesum/internal/config"
	"github.com/erivers/shapesum/internal/parser"
	"github.com/erivers/shapesum/internal/report"
	"github.com/erivers/shapesum/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [catalog]",
		Short: "Re-render the report whenever the catalog changes",
		Long: `Watch the shape catalog and re-render the summary report on every
change. Bursts of file events are debounced (watch.debounce_ms).
Press Ctrl-C to stop.`,
		Args: cobra.MaximumNArgs(1),
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
			out := cmd.OutOrStdout()

			// Render once up front; a missing catalog is fatal here, exactly
			// as it is for a plain report.
			shapes, err := loader.LoadFile(path)
			if err != nil {
				return err
			}
			report.Run(out, shapes)

			debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
			w, err := watcher.New(path, debounce)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Fprintln(out, "\nShutting down...")
				cancel()
			}()

			events, err := w.Start(ctx)
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s...\n", path)

			for evt := range events {
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", evt.Op, evt.Path)
				}

				// The catalog may be mid-replace; a transient open failure
				// is reported and the watch continues.
				shapes, err := loader.LoadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reload: %v\n", err)
					continue
				}

				fmt.Fprintln(out)
				report.Run(out, shapes)
			}

			return nil
		},
	}
}
