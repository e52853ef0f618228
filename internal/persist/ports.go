package persist

import (
	"context"
	"errors"

	"spendsense/internal/core"
)

// ErrNoState signals that the slot holds no usable document: the key is
// absent, the document is empty, or it fails to parse. Callers treat all
// three the same way and fall back to the default state.
var ErrNoState = errors.New("no persisted state")

// Slot is the capability the record store needs from durable storage:
// load the full state once at startup, save the full state after each
// mutation. Adapters decide where the document actually lives.
type Slot interface {
	Load(ctx context.Context) (core.State, error)
	Save(ctx context.Context, state core.State) error
}
