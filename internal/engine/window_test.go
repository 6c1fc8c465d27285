package engine

import "testing"

func TestCoAccessWindow_PushDedupsAndBoundsSize(t *testing.T) {
	w := newCoAccessWindow()
	for i := 0; i < CoAccessWindowSize+5; i++ {
		w.push("id-fixed")
	}
	if len(w.ids) != 1 {
		t.Errorf("expected pushing the same id repeatedly to keep exactly one entry, got %d", len(w.ids))
	}

	w = newCoAccessWindow()
	for i := 0; i < CoAccessWindowSize+5; i++ {
		w.push(string(rune('a' + i)))
	}
	if len(w.ids) != CoAccessWindowSize {
		t.Errorf("expected window bounded at %d, got %d", CoAccessWindowSize, len(w.ids))
	}
}

func TestCoAccessWindow_SeedDedupsKeepingMostRecentOccurrence(t *testing.T) {
	w := newCoAccessWindow()
	// "a" appears twice; the reference behaviour keeps it at its most
	// recent position, not its first.
	w.seed([]string{"a", "b", "a", "c"})

	if len(w.ids) != 3 {
		t.Fatalf("expected 3 distinct ids after dedup, got %d: %v", len(w.ids), w.ids)
	}
	if w.ids[len(w.ids)-1] != "c" {
		t.Errorf("expected most recent id last, got %v", w.ids)
	}
	// "a" must appear after "b" since its most recent occurrence follows "b".
	posA, posB := -1, -1
	for i, id := range w.ids {
		if id == "a" {
			posA = i
		}
		if id == "b" {
			posB = i
		}
	}
	if posA < posB {
		t.Errorf("expected deduped 'a' to retain its most-recent position after 'b', got order %v", w.ids)
	}
}

func TestCoAccessWindow_SeedTruncatesToSizeAfterFullConsumption(t *testing.T) {
	w := newCoAccessWindow()
	entries := make([]string, 0, CoAccessWindowSize*2)
	for i := 0; i < CoAccessWindowSize*2; i++ {
		entries = append(entries, string(rune('a'+i)))
	}
	w.seed(entries)
	if len(w.ids) != CoAccessWindowSize {
		t.Fatalf("expected truncation to %d entries, got %d", CoAccessWindowSize, len(w.ids))
	}
	// the trailing CoAccessWindowSize entries of the original sequence survive.
	wantFirst := entries[len(entries)-CoAccessWindowSize]
	if w.ids[0] != wantFirst {
		t.Errorf("expected truncation to keep the trailing window, first=%q want=%q", w.ids[0], wantFirst)
	}
}
