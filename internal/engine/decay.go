package engine

// DecayResult reports how many synapses and neurons a decay() pass pruned.
type DecayResult struct {
	PrunedSynapses int
	PrunedNeurons  int
}

// Decay applies the periodic multiplicative decay to activation,
// myelination, and synapse weight, then prunes synapses below
// SynapsePruneThreshold and neurons that have decayed below both the
// activation and myelination floors and were barely ever accessed.
//
// Decay is never automatic — callers invoke it on their own schedule
// (spec.md §4.4).
func (e *Engine) Decay() (DecayResult, error) {
	result, err := e.store.ApplyDecay(
		1-ActivationDecayRate,
		1-MyelinDecayRate,
		1-SynapseDecayRate,
		SynapsePruneThreshold,
		PruneActivationFloor,
		PruneMyelinationFloor,
		PruneAccessCountCeiling,
	)
	if err != nil {
		return DecayResult{}, err
	}
	return DecayResult{PrunedSynapses: result.PrunedSynapses, PrunedNeurons: result.PrunedNeurons}, nil
}
