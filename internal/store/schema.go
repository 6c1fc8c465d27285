package store

import "database/sql"

// schemaStatements defines the tables and indexes BrainBox persists its
// graph in. Each statement is idempotent (CREATE ... IF NOT EXISTS), so
// migrate can run unconditionally on every open, the way the teacher
// simulator's createTables functions do for every storage backend it grew
// over time (storage/database.go, storage/sqlite_logger.go,
// src/storage/sqlite.go).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS neurons (
		id             TEXT PRIMARY KEY,
		type           TEXT NOT NULL,
		path           TEXT NOT NULL,
		activation     REAL NOT NULL DEFAULT 0,
		myelination    REAL NOT NULL DEFAULT 0,
		access_count   INTEGER NOT NULL DEFAULT 0,
		contexts_json  TEXT NOT NULL DEFAULT '[]',
		last_accessed  TEXT,
		created_at     TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_neurons_type ON neurons(type);`,
	`CREATE INDEX IF NOT EXISTS idx_neurons_myelination ON neurons(myelination);`,

	`CREATE TABLE IF NOT EXISTS synapses (
		source_id        TEXT NOT NULL,
		target_id        TEXT NOT NULL,
		weight           REAL NOT NULL DEFAULT 0,
		co_access_count  INTEGER NOT NULL DEFAULT 0,
		last_fired       TEXT,
		created_at       TEXT NOT NULL,
		PRIMARY KEY (source_id, target_id),
		FOREIGN KEY (source_id) REFERENCES neurons(id) ON DELETE CASCADE,
		FOREIGN KEY (target_id) REFERENCES neurons(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_synapses_source_weight ON synapses(source_id, weight);`,

	`CREATE TABLE IF NOT EXISTS access_log (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		neuron_id     TEXT NOT NULL,
		session_id    TEXT NOT NULL,
		query         TEXT NOT NULL DEFAULT '',
		timestamp     TEXT NOT NULL,
		token_cost    INTEGER NOT NULL,
		access_order  INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_access_log_timestamp ON access_log(timestamp);`,
	`CREATE INDEX IF NOT EXISTS idx_access_log_session ON access_log(session_id);`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		started_at      TEXT NOT NULL,
		ended_at        TEXT,
		total_accesses  INTEGER NOT NULL DEFAULT 0,
		tokens_used     INTEGER NOT NULL DEFAULT 0,
		tokens_saved    INTEGER NOT NULL DEFAULT 0,
		hit_rate        REAL NOT NULL DEFAULT 0
	);`,
}

// migrate applies every schema statement inside a single transaction.
// A failure that is not an "already exists" condition (which IF NOT
// EXISTS already tolerates) is reported as a SchemaError.
func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return &SchemaError{Statement: "BEGIN", Err: err}
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return &SchemaError{Statement: stmt, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &SchemaError{Statement: "COMMIT", Err: err}
	}
	return nil
}
