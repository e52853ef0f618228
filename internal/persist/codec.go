package persist

import (
	"encoding/json"

	"spendsense/internal/core"
)

// Encode serializes the state document. The layout — "expenses" plus
// "settings.currency" — is the external persistence contract; there is
// no version field and no migration of the document itself.
func Encode(state core.State) ([]byte, error) {
	return json.Marshal(state)
}

// Decode parses a stored document. Any shape mismatch or corruption maps
// to ErrNoState so startup degrades instead of failing.
func Decode(data []byte) (core.State, error) {
	if len(data) == 0 {
		return core.State{}, ErrNoState
	}
	var state core.State
	if err := json.Unmarshal(data, &state); err != nil {
		return core.State{}, ErrNoState
	}
	if state.Expenses == nil {
		state.Expenses = []core.Expense{}
	}
	if state.Settings.Currency.Code == "" {
		state.Settings.Currency = core.DefaultCurrency
	}
	return state, nil
}
