package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/editor"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/watcher"
)

// createWatchCommand creates the watch command.
func createWatchCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report plugin warnings whenever the settings file changes",
		Long: "Report plugin warnings whenever the settings file changes. " +
			"The file is reloaded from disk on every change; stop with Ctrl+C.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, d, true, func(s *session) error {
				w, err := watcher.New(s.cfg.SettingsPath, watcher.DefaultDebounce)
				if err != nil {
					return err //nolint:wrapcheck // names the path
				}
				defer func() { _ = w.Close() }()

				out := cmd.OutOrStdout()
				reportWarnings(out, s)

				ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt)
				defer stop()

				return w.Run(ctx, func() { //nolint:wrapcheck // watcher errors are self-describing
					if err := s.app.Load(); err != nil {
						logging.Get(s.ctx).Warn().Err(err).Msg("reload after change failed")
						_, _ = fmt.Fprintf(out, "Reload failed: %v\n", err)
						return
					}
					_, _ = fmt.Fprintln(out)
					reportWarnings(out, s)
				})
			})
		},
	}
}

func reportWarnings(w io.Writer, s *session) {
	rows := withWarnings(s.app.Rows())
	if len(rows) == 0 {
		_, _ = fmt.Fprintf(w, "%d plugins, no warnings\n", len(s.app.Rows()))
		return
	}

	_, _ = fmt.Fprintf(w, "%d plugins, %d with warnings\n", len(s.app.Rows()), len(rows))
	editor.RenderAll(w, rows, false)
}
