package core

type (
	// Settings holds the user preferences persisted alongside records.
	Settings struct {
		Currency Currency `json:"currency"`
	}

	// State is the full persisted document: the ordered record list plus
	// settings. It round-trips through a single durable slot under one
	// fixed namespace key.
	State struct {
		Expenses []Expense `json:"expenses"`
		Settings Settings  `json:"settings"`
	}
)

// DefaultState is the initial state used when the slot is absent, empty,
// or fails to parse.
func DefaultState() State {
	return State{
		Expenses: []Expense{},
		Settings: Settings{Currency: DefaultCurrency},
	}
}

// Clone returns a deep copy so consumers can never mutate the owner's
// record list through a snapshot.
func (s State) Clone() State {
	out := State{
		Expenses: make([]Expense, len(s.Expenses)),
		Settings: s.Settings,
	}
	copy(out.Expenses, s.Expenses)
	for i, e := range out.Expenses {
		if len(e.Items) > 0 {
			items := make([]SubItem, len(e.Items))
			copy(items, e.Items)
			out.Expenses[i].Items = items
		}
	}
	return out
}
