package engine

import (
	"testing"

	"github.com/brainbox/engine/internal/common"
)

func TestStats_ReflectsGraphState(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Record("/a", common.FileNeuron, "ctx"); err != nil {
		t.Fatalf("Record(/a) failed: %v", err)
	}
	if err := e.Record("/b", common.FileNeuron, "ctx"); err != nil {
		t.Fatalf("Record(/b) failed: %v", err)
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.NeuronCount != 2 {
		t.Errorf("expected 2 neurons, got %d", stats.NeuronCount)
	}
	if stats.SynapseCount != 2 {
		t.Errorf("expected 2 directed synapses (a->b, b->a), got %d", stats.SynapseCount)
	}
	if stats.TotalAccesses != 2 {
		t.Errorf("expected 2 total accesses, got %d", stats.TotalAccesses)
	}
	if stats.AvgMyelination <= 0 {
		t.Errorf("expected positive average myelination, got %v", stats.AvgMyelination)
	}
	if stats.Superhighways != 0 {
		t.Errorf("expected no superhighways yet (myelination starts near 0), got %d", stats.Superhighways)
	}
}

func TestStats_CountsSuperhighways(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 60; i++ {
		if err := e.Record("/hot", common.FileNeuron, ""); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Superhighways != 1 {
		t.Errorf("expected /hot to have crossed the superhighway myelination threshold, got %d superhighways", stats.Superhighways)
	}
}
