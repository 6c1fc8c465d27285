package engine

// coAccessWindow is a bounded FIFO of recently accessed neuron ids, most
// recent last, driving Hebbian strengthening on every record() call. It is
// intentionally ephemeral — the access_log table is the source of truth
// for cross-session continuity (spec.md §9) — and is reconstructed from
// recent access-log rows on open, not persisted directly.
type coAccessWindow struct {
	ids []string
}

func newCoAccessWindow() *coAccessWindow {
	return &coAccessWindow{ids: make([]string, 0, CoAccessWindowSize)}
}

// items returns the window contents, oldest first, excluding the given id.
func (w *coAccessWindow) items(excluding string) []string {
	out := make([]string, 0, len(w.ids))
	for _, id := range w.ids {
		if id != excluding {
			out = append(out, id)
		}
	}
	return out
}

// push removes any prior occurrence of id, appends it at the tail, and
// drops the head if the window now exceeds CoAccessWindowSize.
func (w *coAccessWindow) push(id string) {
	for i, existing := range w.ids {
		if existing == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			break
		}
	}
	w.ids = append(w.ids, id)
	if len(w.ids) > CoAccessWindowSize {
		w.ids = w.ids[len(w.ids)-CoAccessWindowSize:]
	}
}

// seed reconstructs the window from access-log entries in ascending
// timestamp order, deduplicating by keeping each id's most recent
// occurrence, then truncating to the trailing CoAccessWindowSize entries —
// matching the reference behaviour of consuming the full log before
// slicing, rather than stopping early (spec.md §9, "Open question —
// seeding dedup ordering").
func (w *coAccessWindow) seed(entriesAscending []string) {
	seen := make(map[string]int, len(entriesAscending))
	ordered := make([]string, 0, len(entriesAscending))
	for _, id := range entriesAscending {
		if idx, ok := seen[id]; ok {
			ordered = append(ordered[:idx], ordered[idx+1:]...)
			for k, v := range seen {
				if v > idx {
					seen[k] = v - 1
				}
			}
		}
		seen[id] = len(ordered)
		ordered = append(ordered, id)
	}
	if len(ordered) > CoAccessWindowSize {
		ordered = ordered[len(ordered)-CoAccessWindowSize:]
	}
	w.ids = ordered
}
