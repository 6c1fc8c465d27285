package engine

import (
	"math"
	"testing"
	"time"

	"github.com/brainbox/engine/internal/common"
	"github.com/brainbox/engine/internal/store"
)

func TestRecall_MyelinatedFallback(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 20; i++ {
		if err := e.Record("/hot", common.FileNeuron, "unrelated"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	results := e.Recall("nothing-matches", common.FileNeuron, 3)
	if len(results) == 0 {
		t.Fatal("expected at least one fallback result")
	}

	found := false
	for _, r := range results {
		if r.Neuron.Path == "/hot" {
			found = true
			if r.ActivationPath != PathMyelinated {
				t.Errorf("expected activation_path=myelinated, got %s", r.ActivationPath)
			}
			want := float64(r.Neuron.Myelination) * 0.5
			if math.Abs(r.Confidence-want) > 1e-9 {
				t.Errorf("expected confidence=%.4f, got %.4f", want, r.Confidence)
			}
			if r.Confidence < MyelinatedFallbackGate {
				t.Errorf("expected confidence >= %.2f, got %.4f", MyelinatedFallbackGate, r.Confidence)
			}
		}
	}
	if !found {
		t.Error("expected /hot to appear via myelinated fallback")
	}
}

func TestRecall_TypeFiltering(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Record("/file1", common.FileNeuron, "deploy"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := e.Record("tool1", common.ToolNeuron, "deploy"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	results := e.Recall("deploy", common.ToolNeuron, 5)
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 tool result, got %d", len(results))
	}
	if results[0].Neuron.Type != common.ToolNeuron {
		t.Errorf("expected tool neuron, got %s", results[0].Neuron.Type)
	}
}

func TestRecall_NonPositiveLimitReturnsEmpty(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Record("/x", common.FileNeuron, "anything"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if results := e.Recall("anything", common.FileNeuron, 0); results != nil {
		t.Errorf("expected nil results for non-positive limit, got %v", results)
	}
}

func TestRecallPhase2_GateBlocksLowSpreadConfidence(t *testing.T) {
	e := newTestEngine(t)

	now, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("failed to parse time: %v", err)
	}
	a := &Neuron{ID: "file:/a", Type: common.FileNeuron, Path: "/a", CreatedAt: now}
	c := &Neuron{ID: "file:/c", Type: common.FileNeuron, Path: "/c", Myelination: 0, CreatedAt: now}
	if err := e.store.UpsertNeuron(a.toRecord()); err != nil {
		t.Fatalf("UpsertNeuron(a) failed: %v", err)
	}
	if err := e.store.UpsertNeuron(c.toRecord()); err != nil {
		t.Fatalf("UpsertNeuron(c) failed: %v", err)
	}
	if err := e.store.UpsertSynapse(&store.SynapseRecord{
		SourceID: a.ID, TargetID: c.ID, Weight: 0.4, CreatedAt: now.Format(timeLayout),
	}); err != nil {
		t.Fatalf("UpsertSynapse failed: %v", err)
	}

	frontier := []RecallResult{{Neuron: a, Confidence: 0.6, ActivationPath: PathDirect}}
	activated := map[string]bool{a.ID: true}

	results, err := e.recallPhase2(frontier, common.FileNeuron, activated)
	if err != nil {
		t.Fatalf("recallPhase2 failed: %v", err)
	}
	for _, r := range results {
		if r.Neuron.ID == c.ID {
			t.Errorf("expected /c not emitted via spread (0.6*0.4*1.0=0.24 < gate), got confidence=%.3f", r.Confidence)
		}
	}
}

func TestScoreConfidence_ZeroKeywordsYieldsZeroMatchTerms(t *testing.T) {
	n := &Neuron{Path: "/a/b/c", Myelination: 0.9}
	score := scoreConfidence(n, nil, "")
	want := 0.3 * 0.9 // only the myelination term contributes
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("expected score=%.4f, got %.4f", want, score)
	}
}
