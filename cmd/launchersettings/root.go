package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/constants"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand(d *deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "launchersettings",
		Short:         "Launcher plugin settings editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")
	rootCmd.PersistentFlags().StringP("settings", "s", "", "Path to launcher settings.json (overrides config)")

	rootCmd.AddCommand(
		createListCommand(d),
		createShowCommand(d),
		createSetCommand(d),
		createOptionCommand(d),
		createRestoreCommand(d),
		createEditCommand(d),
		createThemeCommand(d),
		createWatchCommand(d),
	)

	return rootCmd
}
