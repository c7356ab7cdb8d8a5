// Package editor implements the launcher plugin settings editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/launchersettings/internal/config"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/notify"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

var (
	ErrNotLoaded        = errors.New("settings not loaded")
	ErrPluginNotFound   = errors.New("plugin not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrUnknownProperty  = errors.New("unknown property")
	ErrInvalidValue     = errors.New("invalid value")
	ErrReadOnlyProperty = errors.New("property is read-only")
)

// App holds the loaded settings file and one view model per plugin.
type App struct {
	ctx      context.Context //nolint:containedctx // carries the logger for notification callbacks
	fs       afero.Fs
	cfg      *config.Config
	isDark   func() bool
	launcher *settings.LauncherSettings
	rows     []*viewmodel.Plugin
	subs     []*notify.Subscription
	dirty    bool
}

// New creates an editor for cfg.SettingsPath. Call Load before use.
func New(ctx context.Context, fs afero.Fs, cfg *config.Config, isDark func() bool) *App {
	return &App{ctx: ctx, fs: fs, cfg: cfg, isDark: isDark}
}

// Load reads the settings file and rebuilds every row.
func (a *App) Load() error {
	launcher, err := settings.LoadFromFileWithFS(a.fs, a.cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load plugin settings: %w", err)
	}

	a.Close()
	a.launcher = launcher

	records := make([]*settings.PluginSettings, len(launcher.Plugins))
	for i := range launcher.Plugins {
		records[i] = &launcher.Plugins[i]
	}

	logger := logging.Get(a.ctx)
	opts := []viewmodel.Option{viewmodel.WithLogger(*logger)}
	if a.cfg.WorkDir != "" {
		workDir := a.cfg.WorkDir
		opts = append(opts, viewmodel.WithWorkingDir(func() (string, error) { return workDir, nil }))
	}

	a.rows = BuildRows(a.ctx, records, a.isDark, opts...)
	for _, row := range a.rows {
		a.subs = append(a.subs, row.Subscribe(a.onChange))
	}
	a.dirty = false

	logger.Debug().Int("plugins", len(a.rows)).Msg("loaded plugin settings")
	return nil
}

// Close drops the subscriptions held on the current rows.
func (a *App) Close() {
	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
	a.subs = nil
}

func (a *App) onChange(change notify.Change) {
	a.dirty = true

	if row, ok := change.Source.(*viewmodel.Plugin); ok {
		logging.Get(a.ctx).Debug().
			Str("plugin", row.ID()).
			Str("property", change.Property).
			Msg("row changed")
	}
}

// Dirty reports whether any row changed since the last Load or Save.
func (a *App) Dirty() bool {
	return a.dirty
}

// Rows returns the plugin rows in file order.
func (a *App) Rows() []*viewmodel.Plugin {
	return a.rows
}

// Find returns the row for a plugin id, or for a case-insensitive exact name
// when no id matches. Edits go through Find so a near miss never changes a
// different plugin; the error lists fuzzy suggestions instead.
func (a *App) Find(id string) (*viewmodel.Plugin, error) {
	if a.launcher == nil {
		return nil, ErrNotLoaded
	}

	if row := a.exact(id); row != nil {
		return row, nil
	}

	if suggestions := a.suggest(id); len(suggestions) > 0 {
		return nil, fmt.Errorf("%w: %s (did you mean %s?)",
			ErrPluginNotFound, id, strings.Join(suggestions, ", "))
	}
	return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, id)
}

// Lookup behaves like Find but falls back to the best fuzzy name match. Use it
// for read-only commands only.
func (a *App) Lookup(query string) (*viewmodel.Plugin, error) {
	if a.launcher == nil {
		return nil, ErrNotLoaded
	}

	if row := a.exact(query); row != nil {
		return row, nil
	}

	if matches := fuzzy.Find(query, a.names()); len(matches) > 0 {
		row := a.rows[matches[0].Index]
		logging.Get(a.ctx).Debug().
			Str("query", query).
			Str("plugin", row.ID()).
			Int("candidates", len(matches)).
			Msg("fuzzy matched plugin name")
		return row, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, query)
}

func (a *App) exact(id string) *viewmodel.Plugin {
	for _, row := range a.rows {
		if row.ID() == id {
			return row
		}
	}
	for _, row := range a.rows {
		if strings.EqualFold(row.Name(), id) {
			return row
		}
	}
	return nil
}

func (a *App) names() []string {
	names := make([]string, len(a.rows))
	for i, row := range a.rows {
		names[i] = row.Name()
	}
	return names
}

// suggest returns up to three plugin ids whose names fuzzily match query.
func (a *App) suggest(query string) []string {
	const maxSuggestions = 3

	var ids []string
	for _, match := range fuzzy.Find(query, a.names()) {
		ids = append(ids, a.rows[match.Index].ID())
		if len(ids) == maxSuggestions {
			break
		}
	}
	return ids
}

// Set assigns a property on the plugin and returns the change notifications
// it produced, in order. Setting the current value returns no notifications.
func (a *App) Set(id, property, value string) ([]string, error) {
	row, err := a.Find(id)
	if err != nil {
		return nil, err
	}

	apply, err := setter(row, property, value)
	if err != nil {
		return nil, err
	}

	return a.capture(row, apply), nil
}

// SetOption assigns an additional option value according to its type.
func (a *App) SetOption(id, key, value string) ([]string, error) {
	row, err := a.Find(id)
	if err != nil {
		return nil, err
	}

	option := row.AdditionalOption(key)
	if option == nil {
		return nil, fmt.Errorf("%w: %s has no option %s", ErrOptionNotFound, row.Name(), key)
	}

	var apply func()
	switch option.OptionType() {
	case settings.OptionTextbox:
		apply = func() { option.SetTextValue(value) }
	case settings.OptionNumberbox:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, value)
		}
		apply = func() { option.SetNumberValue(n) }
	default:
		b, err := parseBool(value)
		if err != nil {
			return nil, err
		}
		apply = func() { option.SetValue(b) }
	}

	return a.capture(row, apply), nil
}

// capture runs apply and records the notifications raised on row.
func (a *App) capture(row *viewmodel.Plugin, apply func()) []string {
	var names []string
	sub := row.Subscribe(func(change notify.Change) {
		names = append(names, change.Property)
	})
	defer sub.Unsubscribe()

	apply()
	return names
}

// Save writes the settings file if anything changed. It reports whether a
// write happened.
func (a *App) Save() (bool, error) {
	if a.launcher == nil {
		return false, ErrNotLoaded
	}
	if !a.dirty {
		return false, nil
	}

	logger := logging.Get(a.ctx)

	if a.cfg.Backup {
		backupPath, err := settings.CreateBackupWithFS(a.fs, a.cfg.SettingsPath)
		switch {
		case err == nil:
			logger.Debug().Str("backup", backupPath).Msg("created settings backup")
		case errors.Is(err, os.ErrNotExist):
			// nothing to back up yet
		default:
			return false, fmt.Errorf("failed to back up settings: %w", err)
		}
	}

	if err := settings.SaveToFileWithFS(a.fs, a.launcher, a.cfg.SettingsPath); err != nil {
		return false, fmt.Errorf("failed to save plugin settings: %w", err)
	}

	a.dirty = false
	logger.Info().Msg("saved plugin settings")
	return true, nil
}

// Restore replaces the settings file with its backup and reloads every row.
// Unsaved changes are discarded.
func (a *App) Restore() (string, error) {
	backupPath := settings.GetBackupPath(a.cfg.SettingsPath)

	if err := settings.RestoreFromBackupWithFS(a.fs, backupPath, a.cfg.SettingsPath); err != nil {
		return "", fmt.Errorf("failed to restore plugin settings: %w", err)
	}
	logging.Get(a.ctx).Info().Str("backup", backupPath).Msg("restored plugin settings")

	return backupPath, a.Load()
}
