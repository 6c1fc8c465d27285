package engine

import (
	"encoding/json"
	"log"
	"time"

	"github.com/brainbox/engine/internal/common"
	"github.com/brainbox/engine/internal/store"
)

// timeLayout is the ISO-8601 layout every persisted timestamp uses.
const timeLayout = time.RFC3339Nano

// Neuron is a persistent node in the memory graph: a file path, tool name,
// error signature, or free-text fact, together with the short-term and
// long-term signals recorded against it.
type Neuron struct {
	ID           string
	Type         common.NeuronType
	Path         string
	Activation   common.Activation
	Myelination  common.Myelination
	AccessCount  int
	Contexts     []string
	LastAccessed *time.Time
	CreatedAt    time.Time
}

// neuronFromRecord decodes a store.NeuronRecord into a Neuron. A corrupt
// contexts blob is a SerializationError: neuronFromRecord logs it as a
// warning and treats the list as empty rather than failing the whole
// operation, so it never returns a non-nil error.
func neuronFromRecord(rec *store.NeuronRecord) (*Neuron, error) {
	nt, _ := common.ParseNeuronType(rec.Type)

	var contexts []string
	if err := json.Unmarshal([]byte(rec.ContextsJSON), &contexts); err != nil {
		log.Printf("brainbox: warning: %v", &store.SerializationError{NeuronID: rec.ID, Err: err})
		contexts = nil
	}

	createdAt, err := time.Parse(timeLayout, rec.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	var lastAccessed *time.Time
	if rec.LastAccessed.Valid && rec.LastAccessed.String != "" {
		if t, err := time.Parse(timeLayout, rec.LastAccessed.String); err == nil {
			lastAccessed = &t
		}
	}

	return &Neuron{
		ID:           rec.ID,
		Type:         nt,
		Path:         rec.Path,
		Activation:   common.Activation(rec.Activation),
		Myelination:  common.Myelination(rec.Myelination),
		AccessCount:  rec.AccessCount,
		Contexts:     contexts,
		LastAccessed: lastAccessed,
		CreatedAt:    createdAt,
	}, nil
}

// toRecord encodes a Neuron back into the flat row shape the store persists.
func (n *Neuron) toRecord() *store.NeuronRecord {
	contextsJSON, err := json.Marshal(n.Contexts)
	if err != nil {
		contextsJSON = []byte("[]")
	}

	rec := &store.NeuronRecord{
		ID:           n.ID,
		Type:         n.Type.String(),
		Path:         n.Path,
		Activation:   float64(n.Activation),
		Myelination:  float64(n.Myelination),
		AccessCount:  n.AccessCount,
		ContextsJSON: string(contextsJSON),
		CreatedAt:    n.CreatedAt.Format(timeLayout),
	}
	if n.LastAccessed != nil {
		rec.LastAccessed.Valid = true
		rec.LastAccessed.String = n.LastAccessed.Format(timeLayout)
	}
	return rec
}

// contextStr joins a neuron's recent contexts with spaces into one string
// for the confidence scorer's keyword matching. It does not change case;
// fractionContaining lower-cases the joined string itself.
func contextStr(n *Neuron) string {
	s := ""
	for i, c := range n.Contexts {
		if i > 0 {
			s += " "
		}
		s += c
	}
	return s
}

// addContext appends ctx to the neuron's context list if non-empty and not
// already present, then trims to the trailing MaxContexts entries.
func (n *Neuron) addContext(ctx string) {
	if ctx == "" {
		return
	}
	for _, existing := range n.Contexts {
		if existing == ctx {
			return
		}
	}
	n.Contexts = append(n.Contexts, ctx)
	if len(n.Contexts) > MaxContexts {
		n.Contexts = n.Contexts[len(n.Contexts)-MaxContexts:]
	}
}

// advanceMyelination applies the asymptotic myelination update formula:
// m <- min(m + MyelinRate*(1-m), MyelinMax).
func advanceMyelination(m common.Myelination) common.Myelination {
	next := float64(m) + MyelinRate*(1-float64(m))
	if next > MyelinMax {
		next = MyelinMax
	}
	return common.Myelination(next)
}
