package settings

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// LoadFromFileWithFS loads launcher settings from a JSON file using the provided filesystem.
func LoadFromFileWithFS(fs afero.Fs, filename string) (*LauncherSettings, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filename, err)
	}

	var settings LauncherSettings
	err = json.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", filename, err)
	}

	return &settings, nil
}

// SaveToFileWithFS saves launcher settings to a JSON file using the provided filesystem.
func SaveToFileWithFS(fs afero.Fs, settings *LauncherSettings, filename string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	err = afero.WriteFile(fs, filename, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write settings to file %s: %w", filename, err)
	}
	return nil
}

// GetBackupPath returns the backup file path for the given settings file.
func GetBackupPath(filename string) string {
	return filename + ".bak"
}

// CreateBackupWithFS creates a simple .bak backup of the settings file.
func CreateBackupWithFS(fs afero.Fs, filename string) (string, error) {
	backupPath := GetBackupPath(filename)

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read original file: %w", err)
	}

	err = afero.WriteFile(fs, backupPath, data, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	return backupPath, nil
}

// RestoreFromBackupWithFS restores settings from a backup file.
func RestoreFromBackupWithFS(fs afero.Fs, backupPath, targetPath string) error {
	data, err := afero.ReadFile(fs, backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	err = afero.WriteFile(fs, targetPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write target file: %w", err)
	}

	return nil
}
