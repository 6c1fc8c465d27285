package engine

import (
	"testing"

	"github.com/brainbox/engine/internal/common"
)

func TestDecay_PrunesWeakSynapses(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Record("/a", common.FileNeuron, ""); err != nil {
		t.Fatalf("Record(/a) failed: %v", err)
	}
	if err := e.Record("/b", common.FileNeuron, ""); err != nil {
		t.Fatalf("Record(/b) failed: %v", err)
	}

	var lastResult DecayResult
	for i := 0; i < 200; i++ {
		result, err := e.Decay()
		if err != nil {
			t.Fatalf("Decay() failed on iteration %d: %v", i, err)
		}
		lastResult = result
	}

	idA := common.NeuronID(common.FileNeuron, "/a")
	idB := common.NeuronID(common.FileNeuron, "/b")
	syn, err := e.store.GetSynapse(idA, idB)
	if err != nil {
		t.Fatalf("GetSynapse failed: %v", err)
	}
	if syn != nil {
		t.Errorf("expected initial weight 0.1 synapse to be pruned after 200 decay passes, still present with weight=%.4f", syn.Weight)
	}

	if lastResult.PrunedSynapses < 0 {
		t.Errorf("unexpected negative pruned synapse count")
	}
}

func TestDecay_NumericInvariantsHoldAfterManyPasses(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 30; i++ {
		if err := e.Record("/churn", common.FileNeuron, ""); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	for i := 0; i < 50; i++ {
		if _, err := e.Decay(); err != nil {
			t.Fatalf("Decay failed: %v", err)
		}
	}

	rec, err := e.store.GetNeuron(common.NeuronID(common.FileNeuron, "/churn"))
	if err != nil {
		t.Fatalf("GetNeuron failed: %v", err)
	}
	if rec != nil {
		if rec.Activation < 0 || rec.Activation > 1 {
			t.Errorf("activation out of range: %v", rec.Activation)
		}
		if rec.Myelination < 0 || rec.Myelination > MyelinMax {
			t.Errorf("myelination out of range: %v", rec.Myelination)
		}
	}
}
