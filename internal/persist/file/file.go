// Package file persists the state document as a single JSON file on
// disk. Writes go through a temp file and rename so a crash mid-write
// never leaves a torn document behind.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"spendsense/internal/core"
	"spendsense/internal/persist"
)

type Slot struct {
	path string
}

func New(path string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &Slot{path: path}, nil
}

func (s *Slot) Load(_ context.Context) (core.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing file is the normal first-run case.
		return core.State{}, persist.ErrNoState
	}
	return persist.Decode(data)
}

func (s *Slot) Save(_ context.Context, state core.State) error {
	doc, err := persist.Encode(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
