// Package memory provides an in-memory state slot, used as the default
// development backend and as the test double for the sqlite and file
// adapters.
package memory

import (
	"context"
	"sync"

	"spendsense/internal/core"
	"spendsense/internal/persist"
)

type Slot struct {
	mu  sync.Mutex
	doc []byte
}

func New() *Slot {
	return &Slot{}
}

// NewSeeded returns a slot pre-populated with the given state. Useful in
// tests that exercise rehydration.
func NewSeeded(state core.State) (*Slot, error) {
	doc, err := persist.Encode(state)
	if err != nil {
		return nil, err
	}
	return &Slot{doc: doc}, nil
}

// The document is kept serialized so every Load exercises the same
// decode path as the durable adapters.
func (s *Slot) Load(_ context.Context) (core.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return persist.Decode(s.doc)
}

func (s *Slot) Save(_ context.Context, state core.State) error {
	doc, err := persist.Encode(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	return nil
}

// Corrupt overwrites the stored document with unparseable bytes. Test
// hook for the degrade-to-default path.
func (s *Slot) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = []byte("{not json")
}
