package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/editor"
)

// createSetCommand creates the set command.
func createSetCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set <plugin> <property> <value>",
		Short: "Set a plugin property",
		Long: "Set a plugin property and save the settings file.\n\nProperties: " +
			strings.Join(editor.EditableProperties(), ", "),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, d, true, func(s *session) error {
				changed, err := s.app.Set(args[0], args[1], args[2])
				if err != nil {
					return err //nolint:wrapcheck // editor errors name the plugin and property
				}
				return finishEdit(cmd.OutOrStdout(), s, changed)
			})
		},
	}
}

// createOptionCommand creates the option command.
func createOptionCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "option <plugin> <key> <value>",
		Short: "Set a plugin additional option",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, d, true, func(s *session) error {
				changed, err := s.app.SetOption(args[0], args[1], args[2])
				if err != nil {
					return err //nolint:wrapcheck // editor errors name the plugin and option
				}
				return finishEdit(cmd.OutOrStdout(), s, changed)
			})
		},
	}
}

// finishEdit reports the change notifications and saves when anything changed.
func finishEdit(w io.Writer, s *session, changed []string) error {
	if len(changed) == 0 {
		_, _ = fmt.Fprintln(w, "No change")
		return nil
	}

	_, _ = fmt.Fprintf(w, "Changed: %s\n", strings.Join(changed, ", "))

	if _, err := s.app.Save(); err != nil {
		return err //nolint:wrapcheck // already wrapped by editor
	}
	_, _ = fmt.Fprintf(w, "Saved %s\n", s.cfg.SettingsPath)
	return nil
}
