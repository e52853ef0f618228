// Package store owns the expense record list and the active-currency
// setting. It is the single source of truth every view reads from; all
// state changes go through its mutators, which persist the full state
// and notify subscribers after each successful mutation.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"spendsense/internal/core"
	"spendsense/internal/log"
	"spendsense/internal/persist"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// Subscriber is notified with a fresh snapshot after every successful
// mutation. Callbacks run synchronously on the mutating goroutine and
// must not call back into the store's mutators.
type Subscriber func(core.State)

type Store struct {
	mu    sync.Mutex
	state core.State
	slot  persist.Slot
	subs  []Subscriber
}

// New builds a store backed by slot and rehydrates it. A load failure of
// any kind — absent key, empty document, parse error, adapter error —
// degrades to the default initial state; startup never fails on bad data.
func New(ctx context.Context, slot persist.Slot) *Store {
	return NewWithDefaultCurrency(ctx, slot, core.DefaultCurrency)
}

// NewWithDefaultCurrency is New with a configurable fallback currency.
// It applies only to the fresh state used when the slot holds nothing
// usable; persisted settings always win.
func NewWithDefaultCurrency(ctx context.Context, slot persist.Slot, cur core.Currency) *Store {
	s := &Store{slot: slot}

	state, err := slot.Load(ctx)
	if err != nil {
		if !errors.Is(err, persist.ErrNoState) {
			slog.WarnContext(ctx, "Stored state unreadable, starting fresh", "error", err)
		}
		state = core.DefaultState()
		if cur.Code != "" {
			state.Settings.Currency = cur
		}
	}
	s.state = state

	slog.InfoContext(ctx, "Store rehydrated",
		"expenses", len(state.Expenses),
		log.FieldCurrency, state.Settings.Currency.Code)
	return s
}

// Subscribe registers a callback for post-mutation notifications.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a deep copy of the current state. Consumers derive
// views from it and never mutate the store through it.
func (s *Store) Snapshot() core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddExpense validates and appends one record. Records are never edited
// in place afterwards; invalid records are rejected and never stored.
func (s *Store) AddExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	for _, existing := range s.state.Expenses {
		if existing.ID == e.ID {
			s.mu.Unlock()
			return errors.New("duplicate expense id")
		}
	}
	s.state.Expenses = append(s.state.Expenses, e)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense recorded",
		log.FieldExpenseID, e.ID,
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCategory, e.Category,
		log.FieldMood, string(e.Mood),
		"grouped", e.Grouped())

	s.afterMutation(ctx)
	return nil
}

// DeleteExpense removes the record with the given id. An unknown id is a
// harmless no-op, not an error; nothing is persisted or published then.
func (s *Store) DeleteExpense(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i, e := range s.state.Expenses {
		if e.ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		slog.DebugContext(ctx, "Delete of unknown expense ignored", log.FieldExpenseID, id)
		return
	}

	slog.InfoContext(ctx, "Expense deleted", log.FieldExpenseID, id)
	s.afterMutation(ctx)
}

// ClearAll removes every record unconditionally and leaves the currency
// setting untouched. Irreversible; user confirmation is a view concern.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	cleared := len(s.state.Expenses)
	s.state.Expenses = []core.Expense{}
	s.mu.Unlock()

	slog.InfoContext(ctx, "All expenses cleared", "removed", cleared)
	s.afterMutation(ctx)
}

// SetCurrency replaces the active display currency. Stored records keep
// the currency code they were created with.
func (s *Store) SetCurrency(ctx context.Context, c core.Currency) error {
	if c.Code == "" {
		return ErrUnknownCurrency
	}

	s.mu.Lock()
	s.state.Settings.Currency = c
	s.mu.Unlock()

	slog.InfoContext(ctx, "Active currency changed", log.FieldCurrency, c.Code)
	s.afterMutation(ctx)
	return nil
}

// afterMutation persists the full state and publishes the new snapshot.
// Persistence is best-effort: a failed save keeps the in-memory state
// authoritative and is never surfaced to the caller.
func (s *Store) afterMutation(ctx context.Context) {
	snap := s.Snapshot()

	if err := s.slot.Save(ctx, snap); err != nil {
		slog.ErrorContext(ctx, "Failed to persist state", "error", err)
	}

	s.mu.Lock()
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
