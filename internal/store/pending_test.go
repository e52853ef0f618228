package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"spendsense/internal/core"
	"spendsense/internal/persist/memory"
)

func newTestPending() *PendingList {
	var n int
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	now := func() time.Time {
		return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	return NewPendingListWith(newID, now)
}

func TestAddItemDefaultsNote(t *testing.T) {
	p := newTestPending()

	if !p.AddItem(core.Money{Cents: 500}, "Bread", core.Happy) {
		t.Fatalf("valid item rejected")
	}
	if !p.AddItem(core.Money{Cents: 1500}, "", core.Sad) {
		t.Fatalf("valid item rejected")
	}

	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Note != "Bread" {
		t.Fatalf("explicit note replaced: %q", items[0].Note)
	}
	if items[1].Note != "Item 2" {
		t.Fatalf("expected positional placeholder, got %q", items[1].Note)
	}
}

func TestAddItemRejectsNonPositive(t *testing.T) {
	p := newTestPending()

	if p.AddItem(core.Money{Cents: 0}, "zero", core.Happy) {
		t.Fatalf("zero amount accepted")
	}
	if p.AddItem(core.Money{Cents: -100}, "negative", core.Happy) {
		t.Fatalf("negative amount accepted")
	}
	if p.AddItem(core.Money{Cents: 100}, "bad mood", core.Mood("angry")) {
		t.Fatalf("unknown mood accepted")
	}
	if len(p.Items()) != 0 {
		t.Fatalf("rejected items were stored: %+v", p.Items())
	}
}

func TestRemoveItem(t *testing.T) {
	p := newTestPending()
	p.AddItem(core.Money{Cents: 500}, "a", core.Happy)
	p.AddItem(core.Money{Cents: 1500}, "b", core.Sad)

	p.RemoveItem("id-1")
	items := p.Items()
	if len(items) != 1 || items[0].Note != "b" {
		t.Fatalf("expected only item b, got %+v", items)
	}

	// Unknown id is a no-op.
	p.RemoveItem("ghost")
	if len(p.Items()) != 1 {
		t.Fatalf("no-op remove changed the list")
	}
}

func TestTotal(t *testing.T) {
	p := newTestPending()
	if got := p.Total(); got.Cents != 0 {
		t.Fatalf("expected zero total, got %d", got.Cents)
	}
	p.AddItem(core.Money{Cents: 500}, "a", core.Happy)
	p.AddItem(core.Money{Cents: 1500}, "b", core.Sad)
	if got := p.Total(); got.Cents != 2000 {
		t.Fatalf("expected 2000, got %d", got.Cents)
	}
}

func TestSaveAllBuildsOneGroupedExpense(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, memory.New())
	p := newTestPending()

	p.AddItem(core.Money{Cents: 500}, "Bread", core.Happy)
	p.AddItem(core.Money{Cents: 1500}, "Medicine", core.Sad)

	e, ok := p.SaveAll(ctx, st)
	if !ok {
		t.Fatalf("save failed")
	}

	if e.Amount.Cents != 2000 {
		t.Fatalf("amount is not the item sum: %d", e.Amount.Cents)
	}
	if e.Mood != core.Happy {
		t.Fatalf("expected first item's mood, got %s", e.Mood)
	}
	if e.Notes != "Group Spend: 2 items" {
		t.Fatalf("unexpected notes: %q", e.Notes)
	}
	if e.Category != core.GroupedCategory {
		t.Fatalf("unexpected category: %q", e.Category)
	}
	if e.Currency != core.DefaultCurrency.Code {
		t.Fatalf("expected active currency code, got %q", e.Currency)
	}
	if !e.Date.Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", e.Date)
	}
	if len(e.Items) != 2 {
		t.Fatalf("sub-items not carried: %+v", e.Items)
	}

	// Exactly one record landed, and the list is clear for the next batch.
	if got := len(st.Snapshot().Expenses); got != 1 {
		t.Fatalf("expected 1 stored record, got %d", got)
	}
	if len(p.Items()) != 0 {
		t.Fatalf("pending list not cleared after commit")
	}
}

func TestSaveAllSingleItemKeepsItsNote(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, memory.New())
	p := newTestPending()

	p.AddItem(core.Money{Cents: 700}, "Taxi", core.Stressed)

	e, ok := p.SaveAll(ctx, st)
	if !ok {
		t.Fatalf("save failed")
	}
	if e.Notes != "Taxi" {
		t.Fatalf("expected the single item's note, got %q", e.Notes)
	}
	if e.Mood != core.Stressed {
		t.Fatalf("expected the single item's mood, got %s", e.Mood)
	}
}

func TestSaveAllEmptyIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, memory.New())
	p := newTestPending()

	if _, ok := p.SaveAll(ctx, st); ok {
		t.Fatalf("empty list produced a record")
	}
	if got := len(st.Snapshot().Expenses); got != 0 {
		t.Fatalf("store changed by empty save: %d records", got)
	}
}

func TestSaveAllSnapshotsActiveCurrency(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, memory.New())
	usd, _ := core.FindCurrency("USD")
	if err := st.SetCurrency(ctx, usd); err != nil {
		t.Fatalf("set currency: %v", err)
	}

	p := newTestPending()
	p.AddItem(core.Money{Cents: 500}, "a", core.Neutral)

	e, ok := p.SaveAll(ctx, st)
	if !ok {
		t.Fatalf("save failed")
	}
	if e.Currency != "USD" {
		t.Fatalf("expected USD snapshot, got %q", e.Currency)
	}
}
