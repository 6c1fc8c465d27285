package engine

// Tuning constants for the Hebbian update rule, decay schedule, and recall
// confidence gates. These are compile-time constants, not configuration —
// SPEC_FULL.md §6 deliberately keeps them out of internal/config so that the
// numeric invariants in the data model can never be perturbed by a caller.
const (
	// MyelinMax is the ceiling long-term trust saturates at.
	MyelinMax = 0.95
	// MyelinRate governs the asymptotic approach to MyelinMax on each access.
	MyelinRate = 0.02

	// LearningRate scales the Hebbian strengthening delta.
	LearningRate = 0.1

	// CoAccessWindowSize bounds the in-memory FIFO of recently accessed neuron ids.
	CoAccessWindowSize = 10

	// MaxContexts bounds the number of distinct context strings kept per neuron.
	MaxContexts = 20

	// ActivationDecayRate is the multiplicative decay applied to activation per decay() call.
	ActivationDecayRate = 0.15
	// MyelinDecayRate is the multiplicative decay applied to myelination per decay() call.
	MyelinDecayRate = 0.005
	// SynapseDecayRate is the multiplicative decay applied to synapse weight per decay() call.
	SynapseDecayRate = 0.02
	// SynapsePruneThreshold is the weight floor below which a synapse is deleted.
	SynapsePruneThreshold = 0.05

	// PruneActivationFloor, PruneMyelinationFloor, and PruneAccessCountCeiling
	// together gate neuron deletion during decay: a neuron is pruned only
	// when activation and myelination have both decayed away and it was
	// barely ever accessed.
	PruneActivationFloor    = 0.01
	PruneMyelinationFloor   = 0.01
	PruneAccessCountCeiling = 2

	// ConfidenceGate is the minimum confidence for a Phase 1 or Phase 2 recall hit.
	ConfidenceGate = 0.4
	// MyelinatedFallbackGate is the minimum confidence for a Phase 3 recall hit.
	MyelinatedFallbackGate = 0.15
	// SpreadWeightGate is the minimum synapse weight to traverse during Phase 2.
	SpreadWeightGate = 0.3

	// DefaultRecallLimit is the default number of results recall() returns.
	DefaultRecallLimit = 5

	// RecencyHalfWindowMS is the age, in milliseconds, at which recency decays
	// linearly to zero in the confidence score (168 hours = one week).
	RecencyHalfWindowMS = 168 * 3_600_000

	// WindowSeedLookbackHours bounds how far back the access log is read to
	// reconstruct the co-access window when the engine is (re)opened.
	WindowSeedLookbackHours = 1
)
