package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/editor"
	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

// createListCommand creates the list command.
func createListCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List launcher plugins and their warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			warningsOnly, _ := cmd.Flags().GetBool("warnings")

			return withSession(cmd, d, true, func(s *session) error {
				rows := s.app.Rows()
				if warningsOnly {
					rows = withWarnings(rows)
				}

				if len(rows) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No plugins found")
					return nil
				}

				editor.RenderAll(cmd.OutOrStdout(), rows, verbose)
				return nil
			})
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show ids, icons and additional options")
	cmd.Flags().BoolP("warnings", "w", false, "Only show plugins with warnings")

	return cmd
}

func withWarnings(rows []*viewmodel.Plugin) []*viewmodel.Plugin {
	var filtered []*viewmodel.Plugin
	for _, row := range rows {
		if row.ShowNotAccessibleWarning() || row.ShowNotAllowedKeywordWarning() {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// createShowCommand creates the show command.
func createShowCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plugin>",
		Short: "Show one plugin in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, d, true, func(s *session) error {
				row, err := s.app.Lookup(args[0])
				if err != nil {
					return err //nolint:wrapcheck // names the plugin
				}

				editor.Render(cmd.OutOrStdout(), row, true)
				return nil
			})
		},
	}
}
