package engine

import (
	"time"

	"github.com/brainbox/engine/internal/common"
)

// Record upserts a neuron for (path, neuronType), strengthens synapses to
// everything currently in the co-access window, logs the access, and
// updates session counters.
//
// An empty path is InvalidInput: per spec.md §7, the call is a silent
// no-op rather than a raised error. Any other failure (store unavailable,
// query error) is returned so the host can log it, but the host is
// expected to swallow it — memory is best-effort.
func (e *Engine) Record(path string, neuronType common.NeuronType, context string) error {
	if path == "" {
		return nil
	}

	now := time.Now()
	id := common.NeuronID(neuronType, path)

	n, err := e.loadOrCreateNeuron(id, neuronType, path, now)
	if err != nil {
		return err
	}

	n.Activation = 1.0
	n.Myelination = advanceMyelination(n.Myelination)
	n.AccessCount++
	n.LastAccessed = &now
	if context != "" {
		n.addContext(context)
	}

	if err := e.store.UpsertNeuron(n.toRecord()); err != nil {
		return err
	}

	order := e.nextAccessOrder()
	tokenCost := int(common.TokenCostFor(neuronType))
	if err := e.store.InsertAccessLog(id, e.session.ID, context, now.Format(timeLayout), tokenCost, order); err != nil {
		return err
	}

	if err := e.strengthenAgainstWindow(id, now); err != nil {
		return err
	}

	e.window.push(id)

	e.session.recordAccess(tokenCost)
	_ = e.session.flush(e.store)

	return nil
}

// RecordSemantic records a free-text fact as a semantic neuron.
func (e *Engine) RecordSemantic(text string, context string) error {
	return e.Record(text, common.SemanticNeuron, context)
}

func (e *Engine) loadOrCreateNeuron(id string, neuronType common.NeuronType, path string, now time.Time) (*Neuron, error) {
	rec, err := e.store.GetNeuron(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &Neuron{
			ID:        id,
			Type:      neuronType,
			Path:      path,
			CreatedAt: now,
		}, nil
	}
	return neuronFromRecord(rec)
}

// strengthenAgainstWindow runs the Hebbian step: for every other id
// currently in the co-access window, strengthen the bidirectional synapse
// pair by delta = LearningRate * (i+1)/|window|, where i is the position of
// the other endpoint in the window (more recent = larger factor).
func (e *Engine) strengthenAgainstWindow(id string, firedAt time.Time) error {
	recent := e.window.items(id)
	n := len(recent)
	if n == 0 {
		return nil
	}

	for i, otherID := range recent {
		delta := LearningRate * float64(i+1) / float64(n)
		if err := e.strengthenSynapse(id, otherID, delta, firedAt); err != nil {
			return err
		}
		if err := e.strengthenSynapse(otherID, id, delta, firedAt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) strengthenSynapse(sourceID, targetID string, delta float64, firedAt time.Time) error {
	rec, err := e.store.GetSynapse(sourceID, targetID)
	if err != nil {
		return err
	}

	var syn *Synapse
	if rec == nil {
		syn = &Synapse{SourceID: sourceID, TargetID: targetID, CreatedAt: firedAt}
	} else {
		syn = synapseFromRecord(rec)
	}
	syn.strengthen(delta, firedAt)

	return e.store.UpsertSynapse(syn.toRecord())
}
