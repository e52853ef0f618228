package core

import "math/rand"

// MoodCount is one segment of the mood-frequency distribution.
type MoodCount struct {
	Mood  Mood
	Count int
}

// MoodDistribution counts records per mood over the closed set, in
// display order. Moods with zero matches are omitted; an empty record
// list yields an empty distribution (the caller renders the empty state).
func MoodDistribution(expenses []Expense) []MoodCount {
	counts := make(map[Mood]int, len(Moods))
	for _, e := range expenses {
		counts[e.Mood]++
	}
	out := make([]MoodCount, 0, len(Moods))
	for _, m := range Moods {
		if counts[m] > 0 {
			out = append(out, MoodCount{Mood: m, Count: counts[m]})
		}
	}
	return out
}

// AnyHappy reports whether at least one record carries the Happy mood.
// It drives the two-variant narrative line on the insights view.
func AnyHappy(expenses []Expense) bool {
	for _, e := range expenses {
		if e.Mood == Happy {
			return true
		}
	}
	return false
}

// Tips is the fixed guidance catalog for the insights view.
var Tips = []string{
	"Elders often find that reviewing the 'Story Timeline' on Sunday evenings helps plan a more peaceful week ahead.",
	"Check your 'Stressed' spends from last week. Is there a pattern you can break today?",
	"A small savings today is a giant cushion for tomorrow's comfort.",
	"Reviewing your spending story with a cup of tea makes the numbers feel less like math and more like memories.",
	"Notice which category brings you the most 'Happy' emojis. Maybe that's where your true value lies.",
	"Financial peace isn't about having a lot; it's about knowing exactly where 'a lot' is going.",
	"Before a big spend, check your timeline. Does this purchase align with the story you want to tell?",
	"The best time to plan your budget was yesterday; the second best time is right now.",
}

// PickTip draws one tip uniformly from the catalog. The random source is
// injected so a fixed seed yields a deterministic selection; one draw
// corresponds to one insights view activation.
func PickTip(rng *rand.Rand) string {
	return Tips[rng.Intn(len(Tips))]
}
