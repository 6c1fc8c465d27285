package engine

// Stats summarizes the current state of the memory graph.
type Stats struct {
	NeuronCount     int
	SynapseCount    int
	Superhighways   int
	TotalAccesses   int
	AvgMyelination  float64
}

// Stats returns neuron/synapse counts, the number of superhighway neurons
// (myelination > 0.5), total recorded accesses, and average myelination.
func (e *Engine) Stats() (Stats, error) {
	neuronStats, synapseCount, totalAccesses, err := e.store.Stats()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		NeuronCount:    neuronStats.Count,
		SynapseCount:   synapseCount,
		Superhighways:  neuronStats.Superhighways,
		TotalAccesses:  totalAccesses,
		AvgMyelination: neuronStats.AvgMyelination,
	}, nil
}
