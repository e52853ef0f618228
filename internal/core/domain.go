package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Happy    Mood = "Happy"
	Neutral  Mood = "Neutral"
	Sad      Mood = "Sad"
	Stressed Mood = "Stressed"
)

// Moods lists the closed set in display order.
var Moods = []Mood{Happy, Neutral, Sad, Stressed}

type (
	Mood string

	Money struct {
		Cents int64 `json:"cents"`
	}

	// SubItem is one line of a grouped expense. It exists only nested
	// inside its parent record and has no independent lifecycle.
	SubItem struct {
		ID     string `json:"id"`
		Amount Money  `json:"amount"`
		Note   string `json:"note"`
		Mood   Mood   `json:"mood"`
	}

	Expense struct {
		ID       string    `json:"id"`
		Amount   Money     `json:"amount"`
		Currency string    `json:"currency"` // code copied at creation, never rewritten
		Category string    `json:"category"`
		Mood     Mood      `json:"mood"`
		Notes    string    `json:"notes"`
		Date     time.Time `json:"date"`
		Items    []SubItem `json:"items,omitempty"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidMood   = errors.New("invalid mood")
	ErrEmptyID       = errors.New("empty id")
	ErrEmptyCategory = errors.New("empty category")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrItemsSum      = errors.New("items do not sum to the recorded amount")
)

func (m Mood) Valid() bool {
	switch m {
	case Happy, Neutral, Sad, Stressed:
		return true
	default:
		return false
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (si SubItem) Validate() error {
	if strings.TrimSpace(si.ID) == "" {
		return ErrEmptyID
	}
	if err := si.Amount.Validate(); err != nil {
		return err
	}
	if !si.Mood.Valid() {
		return ErrInvalidMood
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Mood.Valid() {
		return ErrInvalidMood
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Notes) > 500 {
		return errors.New("notes too long (max 500 characters)")
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if len(e.Items) > 0 {
		var sum int64
		for _, it := range e.Items {
			if err := it.Validate(); err != nil {
				return err
			}
			sum += it.Amount.Cents
		}
		if sum != e.Amount.Cents {
			return ErrItemsSum
		}
	}
	return nil
}

// Grouped reports whether the record carries a sub-item breakdown and is
// therefore expandable in the timeline.
func (e Expense) Grouped() bool {
	return len(e.Items) > 0
}
