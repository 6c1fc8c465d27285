package engine

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/brainbox/engine/internal/common"
)

// ActivationPath names which recall phase produced a RecallResult.
type ActivationPath string

const (
	// PathDirect marks a Phase 1 keyword-context match.
	PathDirect ActivationPath = "direct"
	// PathSpread marks a Phase 2 one-hop spreading-activation hit.
	PathSpread ActivationPath = "spread"
	// PathMyelinated marks a Phase 3 myelinated fallback.
	PathMyelinated ActivationPath = "myelinated"
)

// RecallResult is one ranked recall candidate.
type RecallResult struct {
	Neuron         *Neuron
	Confidence     float64
	ActivationPath ActivationPath
}

// Recall performs keyword-seeded spreading activation over the graph and
// returns up to limit ranked candidates of the given type.
//
// Per spec.md §7's error propagation policy, Recall never returns an
// error: a non-positive limit (InvalidInput) yields an empty sequence, and
// a mid-operation store failure also yields an empty sequence rather than
// propagating — the engine never panics on malformed or unavailable
// persisted data, it treats it as missing.
func (e *Engine) Recall(query string, neuronType common.NeuronType, limit int) []RecallResult {
	if limit <= 0 {
		return nil
	}

	keywords := extractKeywords(query)

	activated := make(map[string]bool)
	var results []RecallResult

	frontier, err := e.recallPhase1(keywords, query, neuronType, activated)
	if err != nil {
		log.Printf("brainbox: warning: recall phase 1 failed: %v", err)
		return nil
	}
	results = append(results, frontier...)

	spread, err := e.recallPhase2(frontier, neuronType, activated)
	if err != nil {
		log.Printf("brainbox: warning: recall phase 2 failed: %v", err)
		return nil
	}
	results = append(results, spread...)

	if len(results) < limit {
		fallback, err := e.recallPhase3(neuronType, limit, activated)
		if err != nil {
			log.Printf("brainbox: warning: recall phase 3 failed: %v", err)
			return nil
		}
		results = append(results, fallback...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	if len(results) > limit {
		results = results[:limit]
	}

	e.creditRecallHits(results)
	return results
}

// extractKeywords lower-cases query, splits on whitespace, and drops tokens
// of length <= 2.
func extractKeywords(query string) []string {
	lower := strings.ToLower(query)
	var keywords []string
	for _, tok := range strings.Fields(lower) {
		if len(tok) > 2 {
			keywords = append(keywords, tok)
		}
	}
	return keywords
}

// recallPhase1 performs the direct keyword match: for each keyword, fetch
// up to 10 candidates whose contexts blob contains it, deduplicated by id,
// filtered to neuronType, scored, and gated at ConfidenceGate.
func (e *Engine) recallPhase1(keywords []string, query string, neuronType common.NeuronType, activated map[string]bool) ([]RecallResult, error) {
	seen := make(map[string]bool)
	var results []RecallResult

	for _, kw := range keywords {
		recs, err := e.store.DirectMatch("%" + kw + "%")
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true

			n, err := neuronFromRecord(rec)
			if err != nil {
				continue
			}
			if n.Type != neuronType {
				continue
			}

			confidence := scoreConfidence(n, keywords, query)
			if confidence >= ConfidenceGate {
				activated[n.ID] = true
				results = append(results, RecallResult{Neuron: n, Confidence: confidence, ActivationPath: PathDirect})
			}
		}
	}
	return results, nil
}

// recallPhase2 spreads activation one hop from the Phase 1 frontier along
// outgoing synapses with weight >= SpreadWeightGate, per spec.md §9's
// "strict 1-hop" decision: spread never re-seeds from nodes Phase 2 itself
// activates.
func (e *Engine) recallPhase2(frontier []RecallResult, neuronType common.NeuronType, activated map[string]bool) ([]RecallResult, error) {
	var results []RecallResult

	for _, seed := range frontier {
		synapses, err := e.store.OutgoingSynapses(seed.Neuron.ID)
		if err != nil {
			return nil, err
		}
		for _, syn := range synapses {
			if syn.Weight < SpreadWeightGate || activated[syn.TargetID] {
				continue
			}

			targetRec, err := e.store.GetNeuron(syn.TargetID)
			if err != nil {
				return nil, err
			}
			if targetRec == nil {
				continue
			}
			target, err := neuronFromRecord(targetRec)
			if err != nil || target.Type != neuronType {
				continue
			}

			spreadConfidence := seed.Confidence * syn.Weight * (1 + float64(target.Myelination))
			if spreadConfidence > 0.99 {
				spreadConfidence = 0.99
			}
			if spreadConfidence >= ConfidenceGate {
				activated[target.ID] = true
				results = append(results, RecallResult{Neuron: target, Confidence: spreadConfidence, ActivationPath: PathSpread})
			}
		}
	}
	return results, nil
}

// recallPhase3 fills remaining slots with the highest-myelination neurons
// of the requested type that Phases 1-2 did not already activate.
func (e *Engine) recallPhase3(neuronType common.NeuronType, limit int, activated map[string]bool) ([]RecallResult, error) {
	fetchLimit := limit + len(activated)
	if fetchLimit < limit {
		fetchLimit = limit
	}

	recs, err := e.store.TopMyelination(neuronType.String(), fetchLimit)
	if err != nil {
		return nil, err
	}

	var results []RecallResult
	for _, rec := range recs {
		if activated[rec.ID] {
			continue
		}
		n, err := neuronFromRecord(rec)
		if err != nil {
			continue
		}

		conf := float64(n.Myelination) * 0.5
		if conf >= MyelinatedFallbackGate {
			activated[n.ID] = true
			results = append(results, RecallResult{Neuron: n, Confidence: conf, ActivationPath: PathMyelinated})
		}
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// scoreConfidence implements the §4.3a formula:
// score = 0.4*ctx_match + 0.3*myelination + 0.2*recency + 0.1*path_match.
func scoreConfidence(n *Neuron, keywords []string, query string) float64 {
	ctxMatch := fractionContaining(contextStr(n), keywords)
	pathMatch := fractionContaining(strings.ToLower(n.Path), keywords)

	recency := 0.0
	if n.LastAccessed != nil {
		ageMS := float64(time.Since(*n.LastAccessed).Milliseconds())
		recency = 1 - ageMS/float64(RecencyHalfWindowMS)
		if recency < 0 {
			recency = 0
		}
	}

	score := 0.4*ctxMatch + 0.3*float64(n.Myelination) + 0.2*recency + 0.1*pathMatch
	if score > 1 {
		score = 1
	}
	return score
}

// fractionContaining returns the fraction of keywords contained in haystack,
// 0 if keywords is empty.
func fractionContaining(haystack string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	haystack = strings.ToLower(haystack)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// creditRecallHits records the token cost of every returned candidate as
// saved for this session: a successful recall means the host didn't need
// to pay to re-derive that context.
func (e *Engine) creditRecallHits(results []RecallResult) {
	if len(results) == 0 {
		return
	}
	for _, r := range results {
		e.session.recordRecallHit(int(common.TokenCostFor(r.Neuron.Type)))
	}
	_ = e.session.flush(e.store)
}
