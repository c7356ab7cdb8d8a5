package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/launchersettings/internal/config"
	"github.com/wizzomafizzo/launchersettings/internal/editor"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/prompt"
	"github.com/wizzomafizzo/launchersettings/internal/storage"
	"github.com/wizzomafizzo/launchersettings/internal/theme"
)

// deps holds the process-level collaborators commands are built from.
type deps struct {
	fs          afero.Fs
	statePath   func() (string, error)
	newPrompter func() prompt.Prompter
	logWriter   io.Writer
}

func defaultDeps() *deps {
	fs := afero.NewOsFs()
	return &deps{
		fs:          fs,
		statePath:   storage.New(fs).GetStatePath,
		newPrompter: func() prompt.Prompter { return prompt.NewLinerPrompter() },
	}
}

// session is everything a command needs for one invocation.
type session struct {
	ctx   context.Context //nolint:containedctx // command-scoped
	cfg   *config.Config
	state *storage.StateManager
	theme *theme.Resolver
	app   *editor.App
}

// openSession loads config, logging, editor state and the settings file.
func openSession(cmd *cobra.Command, d *deps, loadSettings bool) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.LoadOrDefault(d.fs, configPath)
	if err != nil {
		return nil, err //nolint:wrapcheck // config errors name the file problem
	}

	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		cfg.SettingsPath = settingsPath
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err //nolint:wrapcheck // validated by config
	}

	ctx, err := logging.New(cmd.Context(), d.fs, logging.Config{
		Writer:       d.logWriter,
		Filename:     cfg.Logging.Path,
		SettingsPath: cfg.SettingsPath,
		Level:        level,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	statePath, err := d.statePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get state path: %w", err)
	}

	state, err := storage.NewStateManager(ctx, statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open editor state: %w", err)
	}

	s := &session{
		ctx:   ctx,
		cfg:   cfg,
		state: state,
		theme: theme.New(ctx, cfg.ThemeMode(), state),
	}
	s.app = editor.New(ctx, d.fs, cfg, s.theme.IsDark)

	if loadSettings {
		if err := s.app.Load(); err != nil {
			_ = s.Close()
			return nil, err //nolint:wrapcheck // already wrapped by editor
		}
	}

	return s, nil
}

// Close releases the editor subscriptions and the state database.
func (s *session) Close() error {
	s.app.Close()
	return s.state.Close() //nolint:wrapcheck // already wrapped by storage
}

// withSession runs fn against an open session and closes it afterwards.
func withSession(cmd *cobra.Command, d *deps, loadSettings bool, fn func(*session) error) (err error) {
	s, err := openSession(cmd, d, loadSettings)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	return fn(s)
}
