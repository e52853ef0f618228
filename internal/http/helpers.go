package http

import (
	"html/template"
	"strings"

	"spendsense/internal/core"
)

var moodEmoji = map[core.Mood]string{
	core.Happy:    "😊",
	core.Neutral:  "😐",
	core.Sad:      "😢",
	core.Stressed: "😫",
}

// Chart colors per mood, matching the insights legend.
var moodColor = map[core.Mood]string{
	core.Happy:    "#22c55e",
	core.Neutral:  "#94a3b8",
	core.Sad:      "#3b82f6",
	core.Stressed: "#ef4444",
}

func emojiFor(m core.Mood) string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return "💰"
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"moodEmoji": emojiFor,
	}
}

// formatAmount renders cents under the active currency symbol. Display
// currency is always the current setting, not the code stored on the
// record.
func formatAmount(symbol string, cents int64) string {
	return symbol + core.FormatGrouped(cents)
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
