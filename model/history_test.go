package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	h := NewHistory(0)
	w := mustWorld(t, [][]Status{{A, A, D}, {A, A, D}, {D, D, D}})

	h.Record(w)
	next := mustStep(t, w, 1)
	if got := h.Period(next); got != 1 {
		t.Errorf("Period() = %d, want 1", got)
	}
	if !h.IsStagnant(next) {
		t.Error("block should be stagnant")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	h := NewHistory(5)
	w := mustWorld(t, [][]Status{
		{D, D, D, D, D},
		{D, D, A, D, D},
		{D, D, A, D, D},
		{D, D, A, D, D},
		{D, D, D, D, D},
	})

	h.Record(w)
	w = mustStep(t, w, 1)
	if h.IsStagnant(w) {
		t.Fatal("blinker reported stagnant after one generation")
	}
	h.Record(w)
	w = mustStep(t, w, 1)
	if got := h.Period(w); got != 2 {
		t.Errorf("Period() = %d, want 2", got)
	}
}

func TestHistoryGliderIsNotStagnant(t *testing.T) {
	table := make([][]Status, 10)
	for x := range table {
		table[x] = make([]Status, 10)
	}
	table[0][1], table[1][2], table[2][0], table[2][1], table[2][2] = A, A, A, A, A

	h := NewHistory(5)
	w := mustWorld(t, table)
	for range 3 {
		h.Record(w)
		w = mustStep(t, w, 1)
		if h.IsStagnant(w) {
			t.Fatalf("glider reported stagnant at generation %d:\n%s", w.GenerationCount(), w)
		}
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(2)
	w := mustWorld(t, [][]Status{{A}})
	for range 4 {
		h.Record(w)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	h.Reset()
	if h.Len() != 0 || h.IsStagnant(w) {
		t.Error("Reset should forget every world")
	}
}
