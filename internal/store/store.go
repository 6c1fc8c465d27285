// Package store implements BrainBox's embedded persistent relational store:
// an opinionated wrapper around database/sql and github.com/mattn/go-sqlite3
// that owns schema migrations, write-ahead logging, foreign-key enforcement,
// and the hot-path prepared statements the engine package drives its
// record/recall/decay operations through.
//
// The store is re-openable: every method calls ensureOpen, which
// transparently reopens the handle (and re-prepares every statement) if a
// prior Close left it shut. This mirrors the teacher simulator's storage
// layer, which always assumes it may be asked to initialize against a path
// more than once in a process's lifetime (storage/database.go's InitDB,
// src/storage/sqlite.go's InitDB).
package store

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// NeuronRecord is the raw on-disk row for a neuron.
type NeuronRecord struct {
	ID            string
	Type          string
	Path          string
	Activation    float64
	Myelination   float64
	AccessCount   int
	ContextsJSON  string
	LastAccessed  sql.NullString
	CreatedAt     string
}

// SynapseRecord is the raw on-disk row for a synapse.
type SynapseRecord struct {
	SourceID      string
	TargetID      string
	Weight        float64
	CoAccessCount int
	LastFired     sql.NullString
	CreatedAt     string
}

// AccessLogEntry is one row of the access_log table, as read back for
// co-access window seeding.
type AccessLogEntry struct {
	NeuronID  string
	Timestamp string
}

// SessionRecord is the raw on-disk row for a session.
type SessionRecord struct {
	ID             string
	StartedAt      string
	EndedAt        sql.NullString
	TotalAccesses  int
	TokensUsed     int
	TokensSaved    int
	HitRate        float64
}

// NeuronStats summarizes the neuron table for admin reporting.
type NeuronStats struct {
	Count          int
	AvgMyelination float64
	Superhighways  int
}

// Store is BrainBox's embedded persistent store. The zero value is not
// usable; construct with Open.
type Store struct {
	path   string
	db     *sql.DB
	isOpen bool
	stmts  *statements
}

type statements struct {
	getNeuron         *sql.Stmt
	upsertNeuron      *sql.Stmt
	insertAccessLog   *sql.Stmt
	getSynapse        *sql.Stmt
	upsertSynapse     *sql.Stmt
	directMatch       *sql.Stmt
	outgoingSynapses  *sql.Stmt
	topMyelination    *sql.Stmt
	decayActivation   *sql.Stmt
	decayMyelination  *sql.Stmt
	decaySynapses     *sql.Stmt
	pruneSynapses     *sql.Stmt
	pruneNeurons      *sql.Stmt
	upsertSession     *sql.Stmt
	recentAccessLog   *sql.Stmt
	neuronStats       *sql.Stmt
	synapseCount      *sql.Stmt
	totalAccesses     *sql.Stmt
}

// Open opens or creates the store at path, ensuring its parent directory
// exists, enabling WAL mode and foreign-key enforcement, applying schema
// migrations, and preparing every hot-path statement.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the configured database file path.
func (s *Store) Path() string { return s.path }

// IsOpen reports whether the store currently holds a live handle.
func (s *Store) IsOpen() bool { return s.isOpen }

func (s *Store) reopen() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StoreOpenError{Path: s.path, Err: err}
		}
	}

	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return &StoreOpenError{Path: s.path, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &StoreOpenError{Path: s.path, Err: err}
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return &StoreOpenError{Path: s.path, Err: err}
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	stmts, err := prepareStatements(db)
	if err != nil {
		db.Close()
		return &StoreOpenError{Path: s.path, Err: err}
	}

	s.db = db
	s.stmts = stmts
	s.isOpen = true
	return nil
}

func (s *Store) ensureOpen() error {
	if s.isOpen {
		return nil
	}
	log.Printf("brainbox: warning: store %s was closed, reopening lazily", s.path)
	return s.reopen()
}

func prepareStatements(db *sql.DB) (*statements, error) {
	st := &statements{}
	prep := func(dst **sql.Stmt, query string) error {
		stmt, err := db.Prepare(query)
		if err != nil {
			return err
		}
		*dst = stmt
		return nil
	}

	queries := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&st.getNeuron, `SELECT id, type, path, activation, myelination, access_count, contexts_json, last_accessed, created_at FROM neurons WHERE id = ?`},
		{&st.upsertNeuron, `INSERT INTO neurons (id, type, path, activation, myelination, access_count, contexts_json, last_accessed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				activation = excluded.activation,
				myelination = excluded.myelination,
				access_count = excluded.access_count,
				contexts_json = excluded.contexts_json,
				last_accessed = excluded.last_accessed`},
		{&st.insertAccessLog, `INSERT INTO access_log (neuron_id, session_id, query, timestamp, token_cost, access_order) VALUES (?, ?, ?, ?, ?, ?)`},
		{&st.getSynapse, `SELECT source_id, target_id, weight, co_access_count, last_fired, created_at FROM synapses WHERE source_id = ? AND target_id = ?`},
		{&st.upsertSynapse, `INSERT INTO synapses (source_id, target_id, weight, co_access_count, last_fired, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(source_id, target_id) DO UPDATE SET
				weight = excluded.weight,
				co_access_count = excluded.co_access_count,
				last_fired = excluded.last_fired`},
		{&st.directMatch, `SELECT id, type, path, activation, myelination, access_count, contexts_json, last_accessed, created_at
			FROM neurons WHERE contexts_json LIKE ? ORDER BY myelination DESC LIMIT 10`},
		{&st.outgoingSynapses, `SELECT target_id, weight FROM synapses WHERE source_id = ? ORDER BY weight DESC LIMIT 10`},
		{&st.topMyelination, `SELECT id, type, path, activation, myelination, access_count, contexts_json, last_accessed, created_at
			FROM neurons WHERE type = ? ORDER BY myelination DESC LIMIT ?`},
		{&st.decayActivation, `UPDATE neurons SET activation = activation * ?`},
		{&st.decayMyelination, `UPDATE neurons SET myelination = myelination * ?`},
		{&st.decaySynapses, `UPDATE synapses SET weight = weight * ?`},
		{&st.pruneSynapses, `DELETE FROM synapses WHERE weight < ?`},
		{&st.pruneNeurons, `DELETE FROM neurons WHERE activation < ? AND myelination < ? AND access_count < ?`},
		{&st.upsertSession, `INSERT INTO sessions (id, started_at, ended_at, total_accesses, tokens_used, tokens_saved, hit_rate)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				ended_at = excluded.ended_at,
				total_accesses = excluded.total_accesses,
				tokens_used = excluded.tokens_used,
				tokens_saved = excluded.tokens_saved,
				hit_rate = excluded.hit_rate`},
		{&st.recentAccessLog, `SELECT neuron_id, timestamp FROM access_log WHERE timestamp >= ? ORDER BY timestamp ASC, access_order ASC`},
		{&st.neuronStats, `SELECT COUNT(*), COALESCE(AVG(myelination), 0), SUM(CASE WHEN myelination > 0.5 THEN 1 ELSE 0 END) FROM neurons`},
		{&st.synapseCount, `SELECT COUNT(*) FROM synapses`},
		{&st.totalAccesses, `SELECT COUNT(*) FROM access_log`},
	}

	for _, q := range queries {
		if err := prep(q.dst, q.query); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Close closes the store's handle. It is idempotent: a second Close, or a
// Close on a store that was never opened, is a no-op.
func (s *Store) Close() error {
	if !s.isOpen {
		return nil
	}
	s.isOpen = false
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.stmts = nil
	return err
}
