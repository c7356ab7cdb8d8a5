// Package config loads the settings editor configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/theme"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// SettingsPath is the launcher settings JSON file to edit.
	SettingsPath string `yaml:"settings_path"`

	// Theme is one of system, light or dark.
	Theme string `yaml:"theme,omitempty"`

	// WorkDir overrides the directory plugin icons are resolved under.
	// Empty means the process working directory.
	WorkDir string `yaml:"work_dir,omitempty"`

	Logging LoggingConfig `yaml:"logging"`

	// Backup writes a .bak copy of the settings file before saving.
	Backup bool `yaml:"backup"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`

	// Path overrides the rotated log file under the XDG data directory.
	Path string `yaml:"path,omitempty"`
}

// Load reads and validates the config at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadOrDefault behaves like Load but returns DefaultConfig when path does not exist.
func LoadOrDefault(fs afero.Fs, path string) (*Config, error) {
	cfg, err := Load(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromYAML loads config from YAML bytes, filling unset fields from DefaultConfig.
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return errors.New("settings_path is required and cannot be empty")
	}

	if _, err := theme.ParseMode(c.Theme); err != nil {
		return err //nolint:wrapcheck // message already names the field
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err //nolint:wrapcheck // message already names the field
	}

	return nil
}

// ThemeMode returns the parsed theme mode. Validate must have succeeded.
func (c *Config) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme)
	if err != nil {
		return theme.ModeSystem
	}
	return mode
}
