// Package backend selects and constructs the persistence slot the store
// runs on, based on configuration.
package backend

import (
	"fmt"

	"spendsense/internal/config"
	"spendsense/internal/persist"
)

// Type identifies a slot adapter.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	FileBackend   Type = "file"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases any resources held by the slot.
type CleanupFunc func() error

// SlotResult contains the slot instance and an optional cleanup function.
type SlotResult struct {
	Slot    persist.Slot
	Cleanup CleanupFunc
}

// Config holds what the factory needs to build a slot.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// File specific
	StateFilePath string

	// Namespace key the state document is stored under
	StorageKey string
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:          backendType,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		StateFilePath: appConfig.StateFilePath,
		StorageKey:    appConfig.StorageKey,
	}, nil
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage key is required")
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case FileBackend:
		if c.StateFilePath == "" {
			return fmt.Errorf("state file path is required for file backend")
		}
	case MemoryBackend:
		// No further requirements.
	}

	return nil
}
