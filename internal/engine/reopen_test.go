package engine

import (
	"path/filepath"
	"testing"

	"github.com/brainbox/engine/internal/common"
)

// TestReopen_WindowReconstructedFromAccessLog reproduces the persistence
// scenario: a fresh co-access window loses its in-memory state across a
// Close/Open cycle, but Open reconstructs it from the last hour of access
// log rows, so a co-access relationship recorded before the restart still
// strengthens synapses to whatever is recorded immediately after it.
func TestReopen_WindowReconstructedFromAccessLog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "brainbox.db")

	e1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	if err := e1.Record("/a", common.FileNeuron, ""); err != nil {
		t.Fatalf("Record(/a) failed: %v", err)
	}
	if err := e1.Record("/b", common.FileNeuron, ""); err != nil {
		t.Fatalf("Record(/b) failed: %v", err)
	}
	if err := e1.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	e2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	t.Cleanup(func() { e2.Close() })

	if len(e2.window.ids) != 2 {
		t.Fatalf("expected reopened window to contain 2 seeded ids, got %d: %v", len(e2.window.ids), e2.window.ids)
	}

	if err := e2.Record("/c", common.FileNeuron, ""); err != nil {
		t.Fatalf("Record(/c) failed: %v", err)
	}

	idA := common.NeuronID(common.FileNeuron, "/a")
	idB := common.NeuronID(common.FileNeuron, "/b")
	idC := common.NeuronID(common.FileNeuron, "/c")

	synCA, err := e2.store.GetSynapse(idC, idA)
	if err != nil {
		t.Fatalf("GetSynapse(c,a) failed: %v", err)
	}
	if synCA == nil {
		t.Error("expected synapse c->a to exist after reopen-seeded window")
	}
	synCB, err := e2.store.GetSynapse(idC, idB)
	if err != nil {
		t.Fatalf("GetSynapse(c,b) failed: %v", err)
	}
	if synCB == nil {
		t.Error("expected synapse c->b to exist after reopen-seeded window")
	}
	synAC, err := e2.store.GetSynapse(idA, idC)
	if err != nil {
		t.Fatalf("GetSynapse(a,c) failed: %v", err)
	}
	if synAC == nil {
		t.Error("expected reverse synapse a->c to exist (bidirectional strengthening)")
	}
}
