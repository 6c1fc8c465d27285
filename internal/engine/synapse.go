package engine

import (
	"time"

	"github.com/brainbox/engine/internal/common"
	"github.com/brainbox/engine/internal/store"
)

// Synapse is a directed weighted edge between two neurons, strengthened by
// co-access and decayed/pruned by decay().
type Synapse struct {
	SourceID      string
	TargetID      string
	Weight        common.Weight
	CoAccessCount int
	LastFired     time.Time
	CreatedAt     time.Time
}

func synapseFromRecord(rec *store.SynapseRecord) *Synapse {
	s := &Synapse{
		SourceID:      rec.SourceID,
		TargetID:      rec.TargetID,
		Weight:        common.Weight(rec.Weight),
		CoAccessCount: rec.CoAccessCount,
	}
	if t, err := time.Parse(timeLayout, rec.CreatedAt); err == nil {
		s.CreatedAt = t
	}
	if rec.LastFired.Valid {
		if t, err := time.Parse(timeLayout, rec.LastFired.String); err == nil {
			s.LastFired = t
		}
	}
	return s
}

func (s *Synapse) toRecord() *store.SynapseRecord {
	rec := &store.SynapseRecord{
		SourceID:      s.SourceID,
		TargetID:      s.TargetID,
		Weight:        float64(s.Weight),
		CoAccessCount: s.CoAccessCount,
		CreatedAt:     s.CreatedAt.Format(timeLayout),
	}
	if !s.LastFired.IsZero() {
		rec.LastFired.Valid = true
		rec.LastFired.String = s.LastFired.Format(timeLayout)
	}
	return rec
}

// strengthen applies the synaptic strengthening formula
// w <- min(w + delta*(1-w), 1) and bumps the co-access counter.
func (s *Synapse) strengthen(delta float64, firedAt time.Time) {
	next := float64(s.Weight) + delta*(1-float64(s.Weight))
	if next > 1 {
		next = 1
	}
	s.Weight = common.Weight(next)
	s.CoAccessCount++
	s.LastFired = firedAt
}
