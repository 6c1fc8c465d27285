package engine

import (
	"path/filepath"
	"testing"

	"github.com/brainbox/engine/internal/common"
)

// newTestEngine opens a fresh engine against a throwaway file in t.TempDir(),
// the way network/learning_test.go builds a fresh *CrowNet per test rather
// than sharing global state.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "brainbox.db")
	e, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	e := newTestEngine(t)
	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.NeuronCount != 0 {
		t.Errorf("expected empty graph on fresh open, got %d neurons", stats.NeuronCount)
	}
}

func TestClose_IsIdempotentAndReopensLazily(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Close(); err != nil {
		t.Fatalf("first Close() failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close() failed: %v", err)
	}

	if err := e.Record("/a", common.FileNeuron, "ctx"); err != nil {
		t.Fatalf("Record() after Close() should reopen lazily, got: %v", err)
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.NeuronCount != 1 {
		t.Errorf("expected 1 neuron after reopen, got %d", stats.NeuronCount)
	}
}
