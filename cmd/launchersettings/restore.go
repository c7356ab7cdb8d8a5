package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createRestoreCommand creates the restore command.
func createRestoreCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the settings file from the backup written by the last save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, d, false, func(s *session) error {
				backupPath, err := s.app.Restore()
				if err != nil {
					return err //nolint:wrapcheck // already wrapped by editor
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", s.cfg.SettingsPath, backupPath)
				return nil
			})
		},
	}
}
