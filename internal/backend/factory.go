package backend

import (
	"context"
	"fmt"

	"spendsense/internal/log"
	"spendsense/internal/persist/file"
	"spendsense/internal/persist/memory"
	"spendsense/internal/persist/sqlite"
)

// Factory creates slots based on configuration.
type Factory interface {
	CreateSlot(ctx context.Context, config Config) (*SlotResult, error)
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentBackend)
	}
	return &DefaultFactory{logger: logger}
}

// CreateSlot implements Factory.CreateSlot
func (f *DefaultFactory) CreateSlot(_ context.Context, config Config) (*SlotResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		slot, err := sqlite.New(config.SQLiteDBPath, config.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite slot: %w", err)
		}
		f.logger.Info("Initialized sqlite backend",
			"db_path", config.SQLiteDBPath,
			log.FieldStorageKey, config.StorageKey)
		return &SlotResult{Slot: slot, Cleanup: slot.Close}, nil

	case FileBackend:
		slot, err := file.New(config.StateFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file slot: %w", err)
		}
		f.logger.Info("Initialized file backend", "state_path", config.StateFilePath)
		return &SlotResult{Slot: slot, Cleanup: nil}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &SlotResult{Slot: memory.New(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
