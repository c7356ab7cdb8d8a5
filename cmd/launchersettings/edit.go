package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/editor"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/prompt"
)

// createEditCommand creates the interactive edit command.
func createEditCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [plugin]",
		Short: "Edit a plugin interactively",
		Long:  "Edit a plugin interactively. Without an argument the last edited plugin is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, d, true, func(s *session) error {
				id, err := pluginArg(s, args)
				if err != nil {
					return err
				}

				row, err := s.app.Find(id)
				if err != nil {
					return err //nolint:wrapcheck // names the plugin
				}
				editor.Render(cmd.OutOrStdout(), row, true)

				prompter := d.newPrompter()
				defer func() { _ = prompter.Close() }()

				changed, err := s.app.Edit(prompter, row.ID())
				if errors.Is(err, prompt.ErrCancelled) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing saved")
					return nil
				}
				if err != nil {
					return err //nolint:wrapcheck // names the field
				}

				if err := s.state.SetLastPlugin(s.ctx, row.ID()); err != nil {
					logging.Get(s.ctx).Warn().Err(err).Msg("failed to remember last plugin")
				}

				return finishEdit(cmd.OutOrStdout(), s, changed)
			})
		},
	}
}

func pluginArg(s *session, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	id, err := s.state.GetLastPlugin(s.ctx)
	if err != nil {
		return "", err //nolint:wrapcheck // already wrapped by storage
	}
	if id == "" {
		return "", errors.New("no plugin given and none edited before")
	}
	return id, nil
}
