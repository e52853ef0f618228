package store

import (
	"context"
	"testing"
	"time"

	"spendsense/internal/core"
	"spendsense/internal/persist/memory"
)

func testExpense(id string, cents int64, mood core.Mood) core.Expense {
	return core.Expense{
		ID:       id,
		Amount:   core.Money{Cents: cents},
		Currency: "NGN",
		Category: "Others",
		Mood:     mood,
		Date:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestStore(t *testing.T) (*Store, *memory.Slot) {
	t.Helper()
	slot := memory.New()
	return New(context.Background(), slot), slot
}

func TestAddExpenseCountsOnlyValidAdds(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	if err := st.AddExpense(ctx, testExpense("a", 100, core.Happy)); err != nil {
		t.Fatalf("valid add: %v", err)
	}
	if err := st.AddExpense(ctx, testExpense("b", 0, core.Happy)); err == nil {
		t.Fatalf("expected zero amount to be rejected")
	}
	if err := st.AddExpense(ctx, testExpense("c", -50, core.Happy)); err == nil {
		t.Fatalf("expected negative amount to be rejected")
	}
	if err := st.AddExpense(ctx, testExpense("a", 100, core.Happy)); err == nil {
		t.Fatalf("expected duplicate id to be rejected")
	}

	if got := len(st.Snapshot().Expenses); got != 1 {
		t.Fatalf("expected 1 record after 1 valid add, got %d", got)
	}
}

func TestDeleteExpense(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))
	_ = st.AddExpense(ctx, testExpense("b", 200, core.Sad))

	st.DeleteExpense(ctx, "a")
	snap := st.Snapshot()
	if len(snap.Expenses) != 1 {
		t.Fatalf("expected length to drop by one, got %d", len(snap.Expenses))
	}
	for _, e := range snap.Expenses {
		if e.ID == "a" {
			t.Fatalf("deleted record still present")
		}
	}

	// Unknown id is a harmless no-op.
	st.DeleteExpense(ctx, "ghost")
	if got := len(st.Snapshot().Expenses); got != 1 {
		t.Fatalf("no-op delete changed length to %d", got)
	}
}

func TestClearAllKeepsCurrency(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	usd, _ := core.FindCurrency("USD")
	if err := st.SetCurrency(ctx, usd); err != nil {
		t.Fatalf("set currency: %v", err)
	}
	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))
	_ = st.AddExpense(ctx, testExpense("b", 200, core.Sad))

	st.ClearAll(ctx)
	snap := st.Snapshot()
	if len(snap.Expenses) != 0 {
		t.Fatalf("expected empty list, got %d", len(snap.Expenses))
	}
	if snap.Settings.Currency.Code != "USD" {
		t.Fatalf("clear touched currency: %+v", snap.Settings.Currency)
	}
}

func TestSetCurrencyDoesNotRewriteRecords(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))

	usd, _ := core.FindCurrency("USD")
	if err := st.SetCurrency(ctx, usd); err != nil {
		t.Fatalf("set currency: %v", err)
	}

	snap := st.Snapshot()
	if snap.Expenses[0].Currency != "NGN" {
		t.Fatalf("stored record currency was rewritten: %s", snap.Expenses[0].Currency)
	}
	if snap.Settings.Currency.Code != "USD" {
		t.Fatalf("active currency not replaced: %+v", snap.Settings.Currency)
	}

	if err := st.SetCurrency(ctx, core.Currency{}); err == nil {
		t.Fatalf("expected empty currency to be rejected")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	slot := memory.New()
	ctx := context.Background()

	st := New(ctx, slot)
	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))
	_ = st.AddExpense(ctx, testExpense("b", 200, core.Sad))
	usd, _ := core.FindCurrency("USD")
	_ = st.SetCurrency(ctx, usd)

	// A second store over the same slot sees the identical state.
	st2 := New(ctx, slot)
	snap := st2.Snapshot()
	if len(snap.Expenses) != 2 {
		t.Fatalf("expected 2 records after rehydration, got %d", len(snap.Expenses))
	}
	if snap.Expenses[0].ID != "a" || snap.Expenses[1].ID != "b" {
		t.Fatalf("order not preserved: %s, %s", snap.Expenses[0].ID, snap.Expenses[1].ID)
	}
	if snap.Settings.Currency.Code != "USD" {
		t.Fatalf("currency not preserved: %+v", snap.Settings.Currency)
	}
}

func TestConfiguredDefaultCurrency(t *testing.T) {
	ctx := context.Background()
	usd, _ := core.FindCurrency("USD")

	// Empty slot: the configured currency seeds the fresh state.
	st := NewWithDefaultCurrency(ctx, memory.New(), usd)
	if got := st.Snapshot().Settings.Currency.Code; got != "USD" {
		t.Fatalf("configured default not applied: %s", got)
	}

	// Persisted settings always win over the configured default.
	seeded, err := memory.NewSeeded(core.DefaultState())
	if err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	st2 := NewWithDefaultCurrency(ctx, seeded, usd)
	if got := st2.Snapshot().Settings.Currency.Code; got != "NGN" {
		t.Fatalf("persisted currency overridden: %s", got)
	}

	// Zero value falls back to the catalog default.
	st3 := NewWithDefaultCurrency(ctx, memory.New(), core.Currency{})
	if got := st3.Snapshot().Settings.Currency; got != core.DefaultCurrency {
		t.Fatalf("expected catalog default, got %+v", got)
	}
}

func TestCorruptSlotDegradesToDefault(t *testing.T) {
	slot := memory.New()
	slot.Corrupt()

	st := New(context.Background(), slot)
	snap := st.Snapshot()
	if len(snap.Expenses) != 0 {
		t.Fatalf("expected fresh state, got %d records", len(snap.Expenses))
	}
	if snap.Settings.Currency != core.DefaultCurrency {
		t.Fatalf("expected default currency, got %+v", snap.Settings.Currency)
	}
}

func TestSubscriberNotifiedAfterEachMutation(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	var calls int
	var last core.State
	st.Subscribe(func(s core.State) {
		calls++
		last = s
	})

	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))
	st.DeleteExpense(ctx, "a")
	st.ClearAll(ctx)
	usd, _ := core.FindCurrency("USD")
	_ = st.SetCurrency(ctx, usd)

	if calls != 4 {
		t.Fatalf("expected 4 notifications, got %d", calls)
	}
	if last.Settings.Currency.Code != "USD" {
		t.Fatalf("last notification carries stale state: %+v", last.Settings)
	}

	// Rejected mutations and no-op deletes publish nothing.
	_ = st.AddExpense(ctx, testExpense("x", 0, core.Happy))
	st.DeleteExpense(ctx, "ghost")
	if calls != 4 {
		t.Fatalf("expected no notification for rejected/no-op mutations, got %d", calls)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	_ = st.AddExpense(ctx, testExpense("a", 100, core.Happy))

	snap := st.Snapshot()
	snap.Expenses[0].Notes = "mutated"
	snap.Expenses = nil

	got := st.Snapshot()
	if len(got.Expenses) != 1 || got.Expenses[0].Notes == "mutated" {
		t.Fatalf("snapshot mutation leaked into store: %+v", got.Expenses)
	}
}
