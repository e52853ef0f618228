package core

import (
	"math/rand"
	"testing"
)

func withMood(id string, m Mood) Expense {
	e := validExpense()
	e.ID = id
	e.Mood = m
	return e
}

func TestMoodDistribution(t *testing.T) {
	expenses := []Expense{
		withMood("a", Happy),
		withMood("b", Happy),
		withMood("c", Sad),
	}

	got := MoodDistribution(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(got), got)
	}
	if got[0].Mood != Happy || got[0].Count != 2 {
		t.Fatalf("expected Happy:2 first, got %+v", got[0])
	}
	if got[1].Mood != Sad || got[1].Count != 1 {
		t.Fatalf("expected Sad:1 second, got %+v", got[1])
	}
}

func TestMoodDistributionEmpty(t *testing.T) {
	if got := MoodDistribution(nil); len(got) != 0 {
		t.Fatalf("expected no segments for empty store, got %+v", got)
	}
}

func TestAnyHappy(t *testing.T) {
	if AnyHappy([]Expense{withMood("a", Sad), withMood("b", Stressed)}) {
		t.Fatalf("expected false without happy records")
	}
	if !AnyHappy([]Expense{withMood("a", Sad), withMood("b", Happy)}) {
		t.Fatalf("expected true with a happy record")
	}
	if AnyHappy(nil) {
		t.Fatalf("expected false for empty list")
	}
}

func TestPickTipDeterministic(t *testing.T) {
	// Same seed, same draw sequence.
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		ta, tb := PickTip(a), PickTip(b)
		if ta != tb {
			t.Fatalf("draw %d diverged: %q vs %q", i, ta, tb)
		}
	}
}

func TestPickTipFromCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	known := make(map[string]bool, len(Tips))
	for _, tip := range Tips {
		known[tip] = true
	}
	for i := 0; i < 50; i++ {
		if tip := PickTip(rng); !known[tip] {
			t.Fatalf("tip not in catalog: %q", tip)
		}
	}
}
