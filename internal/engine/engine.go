// Package engine implements the BrainBox Hebbian memory engine: a
// persistent, self-organizing graph of neurons and synapses, recorded via
// temporal co-access and recalled via keyword-seeded spreading activation.
//
// The engine is single-writer and synchronous — every exported method
// completes in bounded time with no internal concurrency, mirroring the
// teacher simulator's CrowNet, which assumes callers step its cycle loop
// from one goroutine at a time. Callers that need concurrent access must
// serialize their own calls.
package engine

import (
	"time"

	"github.com/brainbox/engine/internal/store"
)

// Engine is BrainBox's programmatic surface: Open it against a database
// path, then drive Record/RecordSemantic/Recall/Decay/Stats/Close.
type Engine struct {
	store        *store.Store
	session      *Session
	window       *coAccessWindow
	accessOrder  int
}

// Open opens or creates the persistent graph at dbPath, starts a new
// session, and reconstructs the co-access window from the last hour of
// access-log history. It returns a *store.StoreOpenError if the database
// file cannot be created or opened.
func Open(dbPath string) (*Engine, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	sess, err := newSession(st)
	if err != nil {
		st.Close()
		return nil, err
	}

	e := &Engine{
		store:   st,
		session: sess,
		window:  newCoAccessWindow(),
	}
	e.seedWindow()
	return e, nil
}

// seedWindow reconstructs the co-access window from access-log rows in the
// last WindowSeedLookbackHours, ascending, deduplicated by most-recent
// occurrence. A query failure here is non-fatal: the window simply starts
// empty, matching the best-effort nature of record() itself.
func (e *Engine) seedWindow() {
	since := time.Now().Add(-WindowSeedLookbackHours * time.Hour).Format(timeLayout)
	entries, err := e.store.RecentAccessLog(since)
	if err != nil {
		return
	}
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.NeuronID
	}
	e.window.seed(ids)
}

// Close closes the underlying store. It is idempotent; a subsequent
// Record or Recall call transparently reopens the store.
func (e *Engine) Close() error {
	return e.store.Close()
}

func (e *Engine) nextAccessOrder() int {
	e.accessOrder++
	return e.accessOrder
}
