package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	keyDarkTheme  = "state:dark_theme"
	keyLastPlugin = "state:last_plugin"
)

// StateManager persists settings editor preferences in SQLite
type StateManager struct {
	db *sql.DB
}

// NewStateManager opens (or creates) the state database at dbPath
func NewStateManager(ctx context.Context, dbPath string) (*StateManager, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure WAL mode and other pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := runSchemaMigration(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return &StateManager{db: db}, nil
}

// runSchemaMigration ensures the state table exists
func runSchemaMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT (unixepoch())
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create state table: %w", err)
	}
	return nil
}

// Close closes the state manager
func (m *StateManager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// getValue decodes the JSON value stored under key into dest.
// found is false when the key has never been written.
func (m *StateManager) getValue(ctx context.Context, key string, dest any) (found bool, err error) {
	var valueJSON []byte
	err = m.db.QueryRowContext(ctx, "SELECT value FROM state WHERE key = ?", key).Scan(&valueJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(valueJSON, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (m *StateManager) setValue(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = m.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO state (key, value, updated_at) VALUES (?, ?, unixepoch())",
		key, data)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetDarkTheme returns whether the dark theme is preferred. Defaults to false.
func (m *StateManager) GetDarkTheme(ctx context.Context) (bool, error) {
	var dark bool
	if _, err := m.getValue(ctx, keyDarkTheme, &dark); err != nil {
		return false, err
	}
	return dark, nil
}

// SetDarkTheme stores the dark theme preference
func (m *StateManager) SetDarkTheme(ctx context.Context, dark bool) error {
	return m.setValue(ctx, keyDarkTheme, dark)
}

// GetLastPlugin returns the id of the most recently edited plugin, or "".
func (m *StateManager) GetLastPlugin(ctx context.Context) (string, error) {
	var id string
	if _, err := m.getValue(ctx, keyLastPlugin, &id); err != nil {
		return "", err
	}
	return id, nil
}

// SetLastPlugin records the id of the most recently edited plugin
func (m *StateManager) SetLastPlugin(ctx context.Context, id string) error {
	return m.setValue(ctx, keyLastPlugin, id)
}
