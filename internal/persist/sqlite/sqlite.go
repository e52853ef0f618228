// Package sqlite persists the state document in a single-row keyed table.
// The database gives the slot durable, atomic replacement semantics; the
// document inside stays the same JSON the other adapters write.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendsense/internal/core"
	"spendsense/internal/persist"

	_ "modernc.org/sqlite"
)

type Slot struct {
	db  *sql.DB
	key string
}

// New opens (or creates) the database at dbPath and prepares the slot
// for the given namespace key.
func New(dbPath, key string) (*Slot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Slot{db: db, key: key}, nil
}

func (s *Slot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Slot) Load(ctx context.Context) (core.State, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM state_slots WHERE key = ?`, s.key,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return core.State{}, persist.ErrNoState
	}
	if err != nil {
		return core.State{}, fmt.Errorf("read state slot: %w", err)
	}
	return persist.Decode(doc)
}

func (s *Slot) Save(ctx context.Context, state core.State) error {
	doc, err := persist.Encode(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state_slots (key, document, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		s.key, doc)
	if err != nil {
		return fmt.Errorf("write state slot: %w", err)
	}

	slog.DebugContext(ctx, "State slot saved",
		"key", s.key,
		"document_bytes", len(doc),
		"expenses", len(state.Expenses))
	return nil
}
