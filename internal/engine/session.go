package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/brainbox/engine/internal/store"
)

// Session tracks per-session access counts and token totals for the
// lifetime of one engine instance, the way the teacher simulator's CrowNet
// tracks per-run cycle and chemical counters in memory and periodically
// flushes them to the store.
type Session struct {
	ID            string
	StartedAt     time.Time
	TotalAccesses int
	TokensUsed    int
	TokensSaved   int
}

// newSession creates a fresh session record, identified the way the rest
// of the examples pack mints entity ids (google/uuid), and persists it.
func newSession(st *store.Store) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
	if err := sess.flush(st); err != nil {
		return nil, err
	}
	return sess, nil
}

// recordAccess updates in-memory session counters for one record() call,
// charging tokenCost to TokensUsed. Recall savings are credited separately
// by recordRecallHit.
func (s *Session) recordAccess(tokenCost int) {
	s.TotalAccesses++
	s.TokensUsed += tokenCost
}

// recordRecallHit credits a successful recall with its token savings.
func (s *Session) recordRecallHit(tokenCost int) {
	s.TokensSaved += tokenCost
}

// hitRate returns the fraction of total token cost that recall saved.
func (s *Session) hitRate() float64 {
	total := s.TokensUsed + s.TokensSaved
	if total == 0 {
		return 0
	}
	return float64(s.TokensSaved) / float64(total)
}

// flush persists the session's current counters.
func (s *Session) flush(st *store.Store) error {
	return st.UpsertSession(&store.SessionRecord{
		ID:            s.ID,
		StartedAt:     s.StartedAt.Format(timeLayout),
		TotalAccesses: s.TotalAccesses,
		TokensUsed:    s.TokensUsed,
		TokensSaved:   s.TokensSaved,
		HitRate:       s.hitRate(),
	})
}
