package core

// Timeline derivations. These are pure functions over a store snapshot;
// the view layer composes them and owns nothing but presentation state.

// DayLayout is the calendar-day format used by the timeline filter.
const DayLayout = "2006-01-02"

// FilterByDay retains records whose UTC calendar day equals day
// (YYYY-MM-DD). An empty day means no filter. Comparison is done in UTC:
// record dates are stored in UTC, so the filter never shifts a record
// across midnight.
func FilterByDay(expenses []Expense, day string) []Expense {
	if day == "" {
		return expenses
	}
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.UTC().Format(DayLayout) == day {
			out = append(out, e)
		}
	}
	return out
}

// NewestFirst returns a reversed copy of the insertion-ordered list.
// Most-recent-first is a fixed contract of the timeline, not a user
// preference.
func NewestFirst(expenses []Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[len(expenses)-1-i] = e
	}
	return out
}
