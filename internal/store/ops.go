package store

import (
	"database/sql"
)

func scanNeuron(row interface {
	Scan(dest ...any) error
}) (*NeuronRecord, error) {
	var n NeuronRecord
	err := row.Scan(&n.ID, &n.Type, &n.Path, &n.Activation, &n.Myelination, &n.AccessCount, &n.ContextsJSON, &n.LastAccessed, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetNeuron fetches a neuron by id. It returns (nil, nil) if no such
// neuron exists.
func (s *Store) GetNeuron(id string) (*NeuronRecord, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	n, err := scanNeuron(s.stmts.getNeuron.QueryRow(id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &QueryError{Op: "GetNeuron", Err: err}
	}
	return n, nil
}

// UpsertNeuron inserts or fully replaces the mutable fields of a neuron row.
func (s *Store) UpsertNeuron(n *NeuronRecord) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.stmts.upsertNeuron.Exec(n.ID, n.Type, n.Path, n.Activation, n.Myelination, n.AccessCount, n.ContextsJSON, n.LastAccessed, n.CreatedAt)
	if err != nil {
		return &QueryError{Op: "UpsertNeuron", Err: err}
	}
	return nil
}

// InsertAccessLog appends an access-log row.
func (s *Store) InsertAccessLog(neuronID, sessionID, query, timestamp string, tokenCost, accessOrder int) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.stmts.insertAccessLog.Exec(neuronID, sessionID, query, timestamp, tokenCost, accessOrder)
	if err != nil {
		return &QueryError{Op: "InsertAccessLog", Err: err}
	}
	return nil
}

// GetSynapse fetches a synapse by its composite key. It returns (nil, nil)
// if no such synapse exists.
func (s *Store) GetSynapse(sourceID, targetID string) (*SynapseRecord, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	var syn SynapseRecord
	err := s.stmts.getSynapse.QueryRow(sourceID, targetID).Scan(&syn.SourceID, &syn.TargetID, &syn.Weight, &syn.CoAccessCount, &syn.LastFired, &syn.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &QueryError{Op: "GetSynapse", Err: err}
	}
	return &syn, nil
}

// UpsertSynapse inserts or replaces a synapse row.
func (s *Store) UpsertSynapse(syn *SynapseRecord) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.stmts.upsertSynapse.Exec(syn.SourceID, syn.TargetID, syn.Weight, syn.CoAccessCount, syn.LastFired, syn.CreatedAt)
	if err != nil {
		return &QueryError{Op: "UpsertSynapse", Err: err}
	}
	return nil
}

// DirectMatch returns up to 10 neurons whose contexts blob contains the
// given LIKE pattern, ordered by myelination desc.
func (s *Store) DirectMatch(likePattern string) ([]*NeuronRecord, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.stmts.directMatch.Query(likePattern)
	if err != nil {
		return nil, &QueryError{Op: "DirectMatch", Err: err}
	}
	defer rows.Close()
	return scanNeuronRows(rows, "DirectMatch")
}

// OutgoingSynapse is a lightweight (target, weight) pair used by the
// spreading-activation phase of recall.
type OutgoingSynapse struct {
	TargetID string
	Weight   float64
}

// OutgoingSynapses returns up to 10 outgoing synapses from sourceID,
// ordered by weight desc.
func (s *Store) OutgoingSynapses(sourceID string) ([]OutgoingSynapse, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.stmts.outgoingSynapses.Query(sourceID)
	if err != nil {
		return nil, &QueryError{Op: "OutgoingSynapses", Err: err}
	}
	defer rows.Close()

	var out []OutgoingSynapse
	for rows.Next() {
		var o OutgoingSynapse
		if err := rows.Scan(&o.TargetID, &o.Weight); err != nil {
			return nil, &QueryError{Op: "OutgoingSynapses", Err: err}
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "OutgoingSynapses", Err: err}
	}
	return out, nil
}

// TopMyelination returns the top-myelination neurons of the given type.
func (s *Store) TopMyelination(neuronType string, limit int) ([]*NeuronRecord, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.stmts.topMyelination.Query(neuronType, limit)
	if err != nil {
		return nil, &QueryError{Op: "TopMyelination", Err: err}
	}
	defer rows.Close()
	return scanNeuronRows(rows, "TopMyelination")
}

func scanNeuronRows(rows *sql.Rows, op string) ([]*NeuronRecord, error) {
	var out []*NeuronRecord
	for rows.Next() {
		n, err := scanNeuron(rows)
		if err != nil {
			return nil, &QueryError{Op: op, Err: err}
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return out, nil
}

// DecayResult reports how many rows a pruning pass removed.
type DecayResult struct {
	PrunedSynapses int
	PrunedNeurons  int
}

// ApplyDecay multiplies activation, myelination, and synapse weight by
// their respective retention factors (1 - rate), then prunes synapses
// below weightThreshold and neurons matching the prune predicate, all
// inside a single transaction.
func (s *Store) ApplyDecay(activationRetain, myelinationRetain, weightRetain, weightThreshold, activationFloor, myelinationFloor float64, accessCountCeiling int) (DecayResult, error) {
	if err := s.ensureOpen(); err != nil {
		return DecayResult{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Stmt(s.stmts.decayActivation).Exec(activationRetain); err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(activation)", Err: err}
	}
	if _, err := tx.Stmt(s.stmts.decayMyelination).Exec(myelinationRetain); err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(myelination)", Err: err}
	}
	if _, err := tx.Stmt(s.stmts.decaySynapses).Exec(weightRetain); err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(weight)", Err: err}
	}

	synRes, err := tx.Stmt(s.stmts.pruneSynapses).Exec(weightThreshold)
	if err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(pruneSynapses)", Err: err}
	}
	synPruned, _ := synRes.RowsAffected()

	neuronRes, err := tx.Stmt(s.stmts.pruneNeurons).Exec(activationFloor, myelinationFloor, accessCountCeiling)
	if err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(pruneNeurons)", Err: err}
	}
	neuronPruned, _ := neuronRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		return DecayResult{}, &QueryError{Op: "ApplyDecay(commit)", Err: err}
	}

	return DecayResult{PrunedSynapses: int(synPruned), PrunedNeurons: int(neuronPruned)}, nil
}

// UpsertSession inserts or replaces a session row.
func (s *Store) UpsertSession(sess *SessionRecord) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.stmts.upsertSession.Exec(sess.ID, sess.StartedAt, sess.EndedAt, sess.TotalAccesses, sess.TokensUsed, sess.TokensSaved, sess.HitRate)
	if err != nil {
		return &QueryError{Op: "UpsertSession", Err: err}
	}
	return nil
}

// RecentAccessLog returns access-log rows with timestamp >= sinceRFC3339,
// in ascending (timestamp, access_order) order, for co-access window
// seeding on open.
func (s *Store) RecentAccessLog(sinceRFC3339 string) ([]AccessLogEntry, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.stmts.recentAccessLog.Query(sinceRFC3339)
	if err != nil {
		return nil, &QueryError{Op: "RecentAccessLog", Err: err}
	}
	defer rows.Close()

	var out []AccessLogEntry
	for rows.Next() {
		var e AccessLogEntry
		if err := rows.Scan(&e.NeuronID, &e.Timestamp); err != nil {
			return nil, &QueryError{Op: "RecentAccessLog", Err: err}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "RecentAccessLog", Err: err}
	}
	return out, nil
}

// Stats returns aggregate counts over the neuron and synapse tables.
func (s *Store) Stats() (NeuronStats, int, int, error) {
	if err := s.ensureOpen(); err != nil {
		return NeuronStats{}, 0, 0, err
	}

	var ns NeuronStats
	var superhighways sql.NullInt64
	if err := s.stmts.neuronStats.QueryRow().Scan(&ns.Count, &ns.AvgMyelination, &superhighways); err != nil {
		return NeuronStats{}, 0, 0, &QueryError{Op: "Stats(neurons)", Err: err}
	}
	ns.Superhighways = int(superhighways.Int64)

	var synapseCount int
	if err := s.stmts.synapseCount.QueryRow().Scan(&synapseCount); err != nil {
		return NeuronStats{}, 0, 0, &QueryError{Op: "Stats(synapses)", Err: err}
	}

	var totalAccesses int
	if err := s.stmts.totalAccesses.QueryRow().Scan(&totalAccesses); err != nil {
		return NeuronStats{}, 0, 0, &QueryError{Op: "Stats(accesses)", Err: err}
	}

	return ns, synapseCount, totalAccesses, nil
}
