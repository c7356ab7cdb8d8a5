package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/theme"
)

// createThemeCommand creates the theme command.
func createThemeCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or store the preferred editor theme",
		Long:      "Show or store the preferred editor theme. The stored preference applies when the config theme is system.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.ModeLight), string(theme.ModeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, d, false, func(s *session) error {
				if len(args) == 1 {
					mode, err := theme.ParseMode(args[0])
					if err != nil {
						return err //nolint:wrapcheck // names the value
					}
					if mode == theme.ModeSystem {
						return fmt.Errorf("theme must be light or dark, got %q", args[0])
					}
					if err := s.state.SetDarkTheme(s.ctx, mode == theme.ModeDark); err != nil {
						return err //nolint:wrapcheck // already wrapped by storage
					}
				}

				active := theme.ModeLight
				if s.theme.IsDark() {
					active = theme.ModeDark
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s (config: %s)\n", active, s.theme.Mode())
				return nil
			})
		},
	}
}
