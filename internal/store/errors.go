package store

import "fmt"

// StoreOpenError reports that the on-disk database file could not be
// created or opened. It is fatal to the engine instance.
type StoreOpenError struct {
	Path string
	Err  error
}

func (e *StoreOpenError) Error() string {
	return fmt.Sprintf("store: failed to open %s: %v", e.Path, e.Err)
}

func (e *StoreOpenError) Unwrap() error { return e.Err }

// SchemaError reports an irrecoverable migration failure.
type SchemaError struct {
	Statement string
	Err       error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("store: schema migration failed: %v\nstatement:\n%s", e.Err, e.Statement)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SerializationError reports that a stored contexts blob could not be
// decoded. Callers recover by treating the list as empty.
type SerializationError struct {
	NeuronID string
	Err      error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("store: failed to decode contexts for %s: %v", e.NeuronID, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// QueryError reports that an individual statement failed mid-operation.
// The calling operation fails as a whole; on-disk state stays consistent
// because every multi-statement operation runs inside a transaction.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("store: query failed during %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
