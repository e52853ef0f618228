package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spendsense/internal/core"

	"github.com/google/uuid"
)

// PendingList accumulates not-yet-persisted sub-items so a multi-item
// "receipt" becomes a single store write instead of one per line.
type PendingList struct {
	mu    sync.Mutex
	items []core.SubItem

	newID func() string
	now   func() time.Time
}

func NewPendingList() *PendingList {
	return &PendingList{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// NewPendingListWith injects the id generator and clock. Test seam.
func NewPendingListWith(newID func() string, now func() time.Time) *PendingList {
	return &PendingList{newID: newID, now: now}
}

// AddItem appends a sub-item to the in-memory list. Non-positive amounts
// are rejected as a silent no-op, mirroring the entry form. A blank note
// defaults to its positional placeholder ("Item N").
func (p *PendingList) AddItem(amount core.Money, note string, mood core.Mood) bool {
	if amount.Cents <= 0 || !mood.Valid() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if note == "" {
		note = fmt.Sprintf("Item %d", len(p.items)+1)
	}
	p.items = append(p.items, core.SubItem{
		ID:     p.newID(),
		Amount: amount,
		Note:   note,
		Mood:   mood,
	})
	return true
}

// RemoveItem drops a pending sub-item by id before it is committed.
func (p *PendingList) RemoveItem(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, it := range p.items {
		if it.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the pending sub-items.
func (p *PendingList) Items() []core.SubItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.SubItem, len(p.items))
	copy(out, p.items)
	return out
}

// Total is the running sum shown above the entry form.
func (p *PendingList) Total() core.Money {
	p.mu.Lock()
	defer p.mu.Unlock()
	var sum int64
	for _, it := range p.items {
		sum += it.Amount.Cents
	}
	return core.Money{Cents: sum}
}

// SaveAll assembles the pending sub-items into exactly one grouped
// expense and commits it through the store: amount is the sub-item sum,
// the first item's mood represents the whole entry, notes collapse to
// the single note or a generated summary, and the record snapshots the
// currently active currency code. An empty list is a no-op. The pending
// list is cleared only after a successful commit.
func (p *PendingList) SaveAll(ctx context.Context, st *Store) (core.Expense, bool) {
	p.mu.Lock()
	items := make([]core.SubItem, len(p.items))
	copy(items, p.items)
	p.mu.Unlock()

	if len(items) == 0 {
		return core.Expense{}, false
	}

	var total int64
	for _, it := range items {
		total += it.Amount.Cents
	}

	notes := items[0].Note
	if len(items) > 1 {
		notes = fmt.Sprintf("Group Spend: %d items", len(items))
	}

	e := core.Expense{
		ID:       p.newID(),
		Amount:   core.Money{Cents: total},
		Currency: st.Snapshot().Settings.Currency.Code,
		Category: core.GroupedCategory,
		Mood:     items[0].Mood,
		Notes:    notes,
		Date:     p.now().UTC(),
		Items:    items,
	}

	if err := st.AddExpense(ctx, e); err != nil {
		return core.Expense{}, false
	}

	p.mu.Lock()
	p.items = nil
	p.mu.Unlock()
	return e, true
}
